package http

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type categoryUCMock struct {
	mock.Mock
}

func (m *categoryUCMock) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *categoryUCMock) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *categoryUCMock) Create(ctx context.Context, req *usecase.CreateCategoryReq) (*domain.Category, error) {
	args := m.Called(ctx, req)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *categoryUCMock) Update(ctx context.Context, id int64, req *usecase.UpdateCategoryReq) (*domain.Category, error) {
	args := m.Called(ctx, id, req)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *categoryUCMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type productUCMock struct {
	mock.Mock
}

func (m *productUCMock) GetAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productUCMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *productUCMock) Create(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	args := m.Called(ctx, req)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *productUCMock) Update(ctx context.Context, id int64, req *usecase.UpdateProductReq) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *productUCMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type healthUCStub struct {
	report *domain.HealthReport
}

func (s healthUCStub) GetHealth(context.Context) *domain.HealthReport {
	return s.report
}

func ptr[T any](v T) *T {
	return &v
}
