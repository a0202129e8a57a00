package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/stretchr/testify/mock"
)

func (s *RouterSuite) TestCategoryScenario() {
	s.categories.On("Create", mock.Anything, usecase.NewCreateCategoryReq("Beverages", nil)).
		Return(&domain.Category{ID: 1, Name: "Beverages"}, nil).Once()
	s.categories.On("Update", mock.Anything, int64(1), usecase.NewUpdateCategoryReq(nil, ptr("Drinks"))).
		Return(&domain.Category{ID: 1, Name: "Beverages", Description: ptr("Drinks")}, nil).Once()
	s.categories.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	s.categories.On("GetByID", mock.Anything, int64(1)).
		Return(nil, e.NotFound("category with id %d not found", 1)).Once()

	rec := s.do(http.MethodPost, "/api/v1/categories", `{"name":"Beverages"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":1,"name":"Beverages","description":null}`, rec.Body.String())

	rec = s.do(http.MethodPut, "/api/v1/categories/1", `{"description":"Drinks"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"id":1,"name":"Beverages","description":"Drinks"}`, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/categories/1", "")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/categories/1", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"code":404,"message":"category with id 1 not found"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryListEmptyIsArray() {
	s.categories.On("GetAll", mock.Anything).Return([]domain.Category{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/categories", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryList() {
	s.categories.On("GetAll", mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "Beverages", Description: ptr("Drinks")},
		{ID: 2, Name: "Snacks"},
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/categories", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[
		{"id":1,"name":"Beverages","description":"Drinks"},
		{"id":2,"name":"Snacks","description":null}
	]`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryCreateMissingName() {
	rec := s.do(http.MethodPost, "/api/v1/categories", `{"description":"Drinks"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"code":400,"message":"field 'name' is required"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryCreateMalformedJSON() {
	rec := s.do(http.MethodPost, "/api/v1/categories", `{"name":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"code":400`)
}

func (s *RouterSuite) TestCategoryCreateConflict() {
	s.categories.On("Create", mock.Anything, mock.Anything).
		Return(nil, e.Conflict("failed to create category")).Once()

	rec := s.do(http.MethodPost, "/api/v1/categories", `{"name":"Beverages"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"code":409,"message":"failed to create category"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryInvalidID() {
	rec := s.do(http.MethodGet, "/api/v1/categories/abc", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"code":400,"message":"id must be an integer"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryUpdateNotFound() {
	s.categories.On("Update", mock.Anything, int64(9), mock.Anything).
		Return(nil, e.NotFound("category with id %d not found", 9)).Once()

	rec := s.do(http.MethodPut, "/api/v1/categories/9", `{"name":"X"}`)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestCategoryDeleteStillReferenced() {
	s.categories.On("Delete", mock.Anything, int64(1)).
		Return(e.Conflict("category with id %d is still referenced by products", 1)).Once()

	rec := s.do(http.MethodDelete, "/api/v1/categories/1", "")

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterSuite) TestCategoryStorageFailureIs500() {
	s.categories.On("GetByID", mock.Anything, int64(1)).
		Return(nil, e.Wrap("CategoryRepo.GetByID", errors.New("connection reset by peer"))).Once()

	rec := s.do(http.MethodGet, "/api/v1/categories/1", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"code":500,"message":"internal server error"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryCreateRejectsTrailingData() {
	rec := s.do(http.MethodPost, "/api/v1/categories", `{"name":"Beverages"} trailing-garbage`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"code":400,"message":"invalid request body: unexpected data after JSON object"}`, rec.Body.String())
}

func (s *RouterSuite) TestCategoryUpdateRejectsSecondObject() {
	rec := s.do(http.MethodPut, "/api/v1/categories/1", `{"name":"A"}{"name":"B"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCategoryCreateAcceptsTrailingWhitespace() {
	s.categories.On("Create", mock.Anything, usecase.NewCreateCategoryReq("Beverages", nil)).
		Return(&domain.Category{ID: 1, Name: "Beverages"}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/categories", "{\"name\":\"Beverages\"}\n")

	s.Equal(http.StatusCreated, rec.Code)
}
