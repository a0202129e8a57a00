package usecase

// CATEGORY USECASE

// CreateCategoryReq — запрос на создание категории.
type CreateCategoryReq struct {
	Name        string
	Description *string
}

// UpdateCategoryReq — частичное обновление: nil означает «оставить как есть».
type UpdateCategoryReq struct {
	Name        *string
	Description *string
}

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name       string
	Price      int64
	Stock      int64
	CategoryID int64
}

// UpdateProductReq — частичное обновление: nil означает «оставить как есть».
type UpdateProductReq struct {
	Name       *string
	Price      *int64
	Stock      *int64
	CategoryID *int64
}

// MAPPERS

func NewCreateCategoryReq(name string, description *string) *CreateCategoryReq {
	return &CreateCategoryReq{
		Name:        name,
		Description: description,
	}
}

func NewUpdateCategoryReq(name *string, description *string) *UpdateCategoryReq {
	return &UpdateCategoryReq{
		Name:        name,
		Description: description,
	}
}

func NewCreateProductReq(name string, price, stock, categoryID int64) *CreateProductReq {
	return &CreateProductReq{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	}
}

func NewUpdateProductReq(name *string, price, stock, categoryID *int64) *UpdateProductReq {
	return &UpdateProductReq{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	}
}

// valueOr возвращает новое значение, если оно передано, иначе существующее.
func valueOr[T any](v *T, existing T) T {
	if v != nil {
		return *v
	}

	return existing
}

// pointerOr делает то же для необязательных полей.
func pointerOr[T any](v *T, existing *T) *T {
	if v != nil {
		return v
	}

	return existing
}
