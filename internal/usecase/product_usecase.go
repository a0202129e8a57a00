package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
)

// ProductUseCase реализует операции над товарами.
type ProductUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetAll возвращает все товары вместе с их категориями.
func (p *ProductUseCase) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.GetAll"

	products, err := p.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (p *ProductUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Create создаёт товар. Несуществующая категория приводит к e.Conflict из репозитория.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	product, err := p.productRepo.Create(ctx, domain.NewProduct(req.Name, req.Price, req.Stock, req.CategoryID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Debugf("product created: id=%d, category_id=%d", product.ID, product.CategoryID)
	return product, nil
}

// Update читает текущий товар и подменяет только переданные поля.
func (p *ProductUseCase) Update(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	existing, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	updated := &domain.Product{
		ID:         existing.ID,
		Name:       valueOr(req.Name, existing.Name),
		Price:      valueOr(req.Price, existing.Price),
		Stock:      valueOr(req.Stock, existing.Stock),
		CategoryID: valueOr(req.CategoryID, existing.CategoryID),
	}

	product, err := p.productRepo.Update(ctx, updated)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ProductUseCase.Delete"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.logger.Debugf("product deleted: id=%d", id)
	return nil
}
