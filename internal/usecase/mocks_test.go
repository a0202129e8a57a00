package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type categoryRepoMock struct {
	mock.Mock
}

func (m *categoryRepoMock) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *categoryRepoMock) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	created, _ := args.Get(0).(*domain.Category)
	return created, args.Error(1)
}

func (m *categoryRepoMock) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	updated, _ := args.Get(0).(*domain.Category)
	return updated, args.Error(1)
}

func (m *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) GetAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	created, _ := args.Get(0).(*domain.Product)
	return created, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	updated, _ := args.Get(0).(*domain.Product)
	return updated, args.Error(1)
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
