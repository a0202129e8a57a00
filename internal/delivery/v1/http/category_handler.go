package http

import (
	"net/http"

	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.getAll)
		cat.Post("/", h.create)
		cat.Get("/{id}", h.getByID)
		cat.Put("/{id}", h.update)
		cat.Delete("/{id}", h.delete)
	})
}

// getAll
//
//	@Summary		Список категорий
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (h *CategoryHandler) getAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetAll(r.Context())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryListResponse(categories))
}

// getByID
//
//	@Summary		Категория по id
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	category, err := h.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// create
//
//	@Summary		Создание категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCategoryRequest	true	"Категория"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/categories [post]
func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	category, err := h.categoryUsecase.Create(r.Context(), req.toUC())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCategoryResponse(category))
}

// update
//
//	@Summary		Частичное обновление категории
//	@Description	Поля, отсутствующие в запросе, сохраняют текущие значения
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID категории"
//	@Param			request	body		UpdateCategoryRequest	true	"Изменяемые поля"
//	@Success		200		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/categories/{id} [put]
func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	var req UpdateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	category, err := h.categoryUsecase.Update(r.Context(), id, req.toUC())
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// delete
//
//	@Summary		Удаление категории
//	@Tags			categories
//	@Param			id	path	int	true	"ID категории"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Категория используется товарами"
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	if err := h.categoryUsecase.Delete(r.Context(), id); err != nil {
		writeUCError(h.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}
