package domain

// Category описывает категорию товаров
type Category struct {
	ID          int64
	Name        string
	Description *string // nil, если описание не задано
}

func NewCategory(name string, description *string) *Category {
	return &Category{
		Name:        name,
		Description: description,
	}
}
