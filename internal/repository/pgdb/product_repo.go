package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// selectProductWithCategory — товары только с существующей категорией (INNER JOIN).
// Товар, чья категория удалена, в выборку не попадает.
const selectProductWithCategory = `
	SELECT pr.id, pr.name, pr.price, pr.stock, pr.category_id,
	       cat.id, cat.name, cat.description
	FROM products pr
	INNER JOIN categories cat ON pr.category_id = cat.id
`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	db   DB
	conv converter.ProductConverter
}

func NewProductRepo(db DB, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		db:   db,
		conv: conv,
	}
}

// GetAll возвращает все товары с вложенной категорией.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := p.db.Query(ctx, selectProductWithCategory)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		model, err := scanProductWithCategory(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.JoinedToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetByID возвращает товар с вложенной категорией.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := selectProductWithCategory + `WHERE pr.id = $1`

	model, err := scanProductWithCategory(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NotFound("product with id %d not found", id)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.JoinedToEntity(model), nil
}

// Create вставляет товар и возвращает строку без вложенной категории.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, price, stock, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, price, stock, category_id
	`

	in := p.conv.ToModel(product)
	model, err := scanProduct(p.db.QueryRow(ctx, query, in.Name, in.Price, in.Stock, in.CategoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Conflict("failed to create product")
		}
		if pgErr, ok := integrityViolation(err); ok {
			return nil, e.Conflict("failed to create product with category_id %d: %s", product.CategoryID, pgErr.Message)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает все поля товара по id и возвращает строку без категории.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, stock = $3, category_id = $4
		WHERE id = $5
		RETURNING id, name, price, stock, category_id
	`

	in := p.conv.ToModel(product)
	model, err := scanProduct(p.db.QueryRow(ctx, query, in.Name, in.Price, in.Stock, in.CategoryID, in.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NotFound("product with id %d not found", product.ID)
		}
		if pgErr, ok := integrityViolation(err); ok {
			return nil, e.Conflict("failed to update product with category_id %d: %s", product.CategoryID, pgErr.Message)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	return tr.Run(ctx, p.db, func(ctx context.Context) error {
		tx, err := tr.TxFromCtx(ctx)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			if _, ok := integrityViolation(err); ok {
				return e.Conflict("product with id %d is still referenced", id)
			}
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if tag.RowsAffected() == 0 {
			return e.NotFound("product with id %d not found", id)
		}

		return nil
	})
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	if err := row.Scan(&model.ID, &model.Name, &model.Price, &model.Stock, &model.CategoryID); err != nil {
		return nil, err
	}

	return &model, nil
}

func scanProductWithCategory(row pgx.Row) (*converter.ProductWithCategoryModel, error) {
	var model converter.ProductWithCategoryModel
	if err := row.Scan(
		&model.ID, &model.Name, &model.Price, &model.Stock, &model.CategoryID,
		&model.Category.ID, &model.Category.Name, &model.Category.Description,
	); err != nil {
		return nil, err
	}

	return &model, nil
}
