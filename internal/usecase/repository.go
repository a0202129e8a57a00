package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
)

// CategoryRepository хранит категории. Отсутствие строки возвращается как e.NotFound,
// нарушение ограничений хранилища как e.Conflict.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository хранит товары. GetAll и GetByID возвращают товары с категорией,
// Create и Update без неё.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CheckFunc — одна проверка здоровья. Ошибки не возвращаются, а попадают в результат.
type CheckFunc func(ctx context.Context) domain.CheckResult
