package http

import (
	"net/http"

	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.getAll)
		pr.Post("/", h.create)
		pr.Get("/{id}", h.getByID)
		pr.Put("/{id}", h.update)
		pr.Delete("/{id}", h.delete)
	})
}

// getAll
//
//	@Summary		Список товаров
//	@Description	Каждый товар возвращается с вложенной категорией
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		ProductResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (h *ProductHandler) getAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetAll(r.Context())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductListResponse(products))
}

// getByID
//
//	@Summary		Товар по id
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *ProductHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// create
//
//	@Summary		Создание товара
//	@Description	Ответ не содержит вложенной категории (category = null)
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Категория не существует"
//	@Router			/products [post]
func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	product, err := h.productUsecase.Create(r.Context(), req.toUC())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// update
//
//	@Summary		Частичное обновление товара
//	@Description	Поля, отсутствующие в запросе, сохраняют текущие значения
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			request	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, req.toUC())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// delete
//
//	@Summary		Удаление товара
//	@Tags			products
//	@Param			id	path	int	true	"ID товара"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}
