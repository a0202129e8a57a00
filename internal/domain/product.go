package domain

// Product описывает товар
type Product struct {
	ID         int64
	Name       string
	Price      int64 // Цена хранится в минимальных денежных единицах
	Stock      int64
	CategoryID int64

	// Category заполняется только при чтении с JOIN (список и получение по id).
	// Create и Update возвращают товар без вложенной категории.
	Category *Category
}

func NewProduct(name string, price int64, stock int64, categoryID int64) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	}
}
