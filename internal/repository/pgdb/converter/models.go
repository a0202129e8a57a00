package converter

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Price      int64  `db:"price"`
	Stock      int64  `db:"stock"`
	CategoryID int64  `db:"category_id"`
}

// ProductWithCategoryModel — строка products INNER JOIN categories.
type ProductWithCategoryModel struct {
	ProductModel
	Category CategoryModel
}
