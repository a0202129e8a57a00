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

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	db   DB
	conv converter.CategoryConverter
}

func NewCategoryRepo(db DB, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{db: db, conv: conv}
}

// GetAll возвращает все категории; порядок не гарантируется.
func (c *CategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
	`

	rows, err := c.db.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		WHERE id = $1
	`

	var model converter.CategoryModel
	if err := c.db.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NotFound("category with id %d not found", id)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Create вставляет категорию и возвращает строку с назначенным id.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`

	in := c.conv.ToModel(category)
	var model converter.CategoryModel
	if err := c.db.QueryRow(ctx, query, in.Name, in.Description).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Conflict("failed to create category")
		}
		if pgErr, ok := integrityViolation(err); ok {
			return nil, e.Conflict("failed to create category: %s", pgErr.Message)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Update перезаписывает все поля категории по id.
func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING id, name, description
	`

	in := c.conv.ToModel(category)
	var model converter.CategoryModel
	if err := c.db.QueryRow(ctx, query, in.Name, in.Description, in.ID).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NotFound("category with id %d not found", category.ID)
		}
		if pgErr, ok := integrityViolation(err); ok {
			return nil, e.Conflict("failed to update category: %s", pgErr.Message)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет категорию в транзакции; коммит только если строка была удалена.
func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM categories
		WHERE id = $1
	`

	return tr.Run(ctx, c.db, func(ctx context.Context) error {
		tx, err := tr.TxFromCtx(ctx)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			if _, ok := integrityViolation(err); ok {
				return e.Conflict("category with id %d is still referenced by products", id)
			}
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if tag.RowsAffected() == 0 {
			return e.NotFound("category with id %d not found", id)
		}

		return nil
	})
}
