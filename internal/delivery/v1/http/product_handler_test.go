package http

import (
	"net/http"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/stretchr/testify/mock"
)

func (s *RouterSuite) TestProductListNestsCategory() {
	s.products.On("GetAll", mock.Anything).Return([]domain.Product{{
		ID: 1, Name: "Iced tea", Price: 5000, Stock: 20, CategoryID: 2,
		Category: &domain.Category{ID: 2, Name: "Beverages"},
	}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/products", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{
		"id":1,"name":"Iced tea","price":5000,"stock":20,"category_id":2,
		"category":{"id":2,"name":"Beverages","description":null}
	}]`, rec.Body.String())
}

func (s *RouterSuite) TestProductCreateReturnsFlatEntity() {
	s.products.On("Create", mock.Anything, usecase.NewCreateProductReq("Iced tea", 5000, 0, 2)).
		Return(&domain.Product{ID: 3, Name: "Iced tea", Price: 5000, Stock: 0, CategoryID: 2}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Iced tea","price":5000,"stock":0,"category_id":2}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":3,"name":"Iced tea","price":5000,"stock":0,"category_id":2,"category":null}`, rec.Body.String())
}

func (s *RouterSuite) TestProductCreateMissingFields() {
	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Iced tea"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "field 'price' is required")
	s.Contains(rec.Body.String(), "field 'category_id' is required")
}

func (s *RouterSuite) TestProductCreateWrongType() {
	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Iced tea","price":"cheap","stock":1,"category_id":2}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestProductCreateUnknownCategory() {
	s.products.On("Create", mock.Anything, mock.Anything).
		Return(nil, e.Conflict("failed to create product with category_id %d", 404)).Once()

	rec := s.do(http.MethodPost, "/api/v1/products", `{"name":"Iced tea","price":5000,"stock":1,"category_id":404}`)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterSuite) TestProductPartialUpdate() {
	s.products.On("Update", mock.Anything, int64(3), usecase.NewUpdateProductReq(nil, ptr(int64(5500)), nil, nil)).
		Return(&domain.Product{ID: 3, Name: "Iced tea", Price: 5500, Stock: 20, CategoryID: 2}, nil).Once()

	rec := s.do(http.MethodPut, "/api/v1/products/3", `{"price":5500}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"id":3,"name":"Iced tea","price":5500,"stock":20,"category_id":2,"category":null}`, rec.Body.String())
}

func (s *RouterSuite) TestProductGetByIDNotFound() {
	s.products.On("GetByID", mock.Anything, int64(7)).
		Return(nil, e.NotFound("product with id %d not found", 7)).Once()

	rec := s.do(http.MethodGet, "/api/v1/products/7", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"code":404,"message":"product with id 7 not found"}`, rec.Body.String())
}

func (s *RouterSuite) TestProductDelete() {
	s.products.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

	rec := s.do(http.MethodDelete, "/api/v1/products/3", "")

	s.Equal(http.StatusNoContent, rec.Code)
}
