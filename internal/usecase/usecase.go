package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
)

type CategoryUC interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	Update(ctx context.Context, id int64, req *UpdateCategoryReq) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ProductUC interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type HealthUC interface {
	GetHealth(ctx context.Context) *domain.HealthReport
}
