package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
)

// CategoryUseCase реализует операции над категориями.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (c *CategoryUseCase) GetAll(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoryUseCase.GetAll"

	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CategoryUseCase) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CategoryUseCase.GetByID"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// Create создаёт категорию; id назначает хранилище.
func (c *CategoryUseCase) Create(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.Create"

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("category created: id=%d", category.ID)
	return category, nil
}

// Update читает текущую категорию и подменяет только переданные поля.
func (c *CategoryUseCase) Update(ctx context.Context, id int64, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.Update"

	existing, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	updated := &domain.Category{
		ID:          existing.ID,
		Name:        valueOr(req.Name, existing.Name),
		Description: pointerOr(req.Description, existing.Description),
	}

	category, err := c.categoryRepo.Update(ctx, updated)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	const op = "CategoryUseCase.Delete"

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.logger.Debugf("category deleted: id=%d", id)
	return nil
}
