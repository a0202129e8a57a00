package converter

import "github.com/DRSN-tech/kasir-api/internal/domain"

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	JoinedToEntity(model *ProductWithCategoryModel) *domain.Product
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}

	return &CategoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: copyString(entity.Description),
	}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}

	return &domain.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: copyString(model.Description),
	}
}

type ProductConverterImpl struct {
	categories CategoryConverter
}

func NewProductConverterImpl(categories CategoryConverter) *ProductConverterImpl {
	return &ProductConverterImpl{categories: categories}
}

func (p *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}

	return &ProductModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Price:      entity.Price,
		Stock:      entity.Stock,
		CategoryID: entity.CategoryID,
	}
}

// ToEntity возвращает товар без вложенной категории.
func (p *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	return &domain.Product{
		ID:         model.ID,
		Name:       model.Name,
		Price:      model.Price,
		Stock:      model.Stock,
		CategoryID: model.CategoryID,
	}
}

func (p *ProductConverterImpl) JoinedToEntity(model *ProductWithCategoryModel) *domain.Product {
	if model == nil {
		return nil
	}

	product := p.ToEntity(&model.ProductModel)
	product.Category = p.categories.ToEntity(&model.Category)

	return product
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s
	return &v
}
