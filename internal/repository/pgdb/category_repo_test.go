package pgdb

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryColumns = []string{"id", "name", "description"}

func newCategoryRepo(t *testing.T) (*CategoryRepo, pgxmock.PgxPoolIface) {
	mock := newMockPool(t)
	return NewCategoryRepo(mock, converter.NewCategoryConverterImpl()), mock
}

func TestCategoryRepoGetAll(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("SELECT id, name, description FROM categories").
		WillReturnRows(pgxmock.NewRows(categoryColumns).
			AddRow(int64(1), "Beverages", ptr("Drinks")).
			AddRow(int64(2), "Snacks", (*string)(nil)))

	got, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Drinks", *got[0].Description)
	assert.Nil(t, got[1].Description)
}

func TestCategoryRepoGetAllEmpty(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WillReturnRows(pgxmock.NewRows(categoryColumns))

	got, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoryRepoGetByID(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(categoryColumns).AddRow(int64(1), "Beverages", (*string)(nil)))

	got, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, &domain.Category{ID: 1, Name: "Beverages"}, got)
}

func TestCategoryRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	_, err := repo.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, e.KindNotFound, e.KindOf(err))
	assert.Equal(t, "category with id 99 not found", e.MessageOf(err))
}

func TestCategoryRepoCreate(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Beverages", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(categoryColumns).AddRow(int64(1), "Beverages", (*string)(nil)))

	got, err := repo.Create(context.Background(), domain.NewCategory("Beverages", nil))

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Nil(t, got.Description)
}

func TestCategoryRepoCreateNoRowIsConflict(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Beverages", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	_, err := repo.Create(context.Background(), domain.NewCategory("Beverages", nil))

	assert.Equal(t, e.KindConflict, e.KindOf(err))
}

func TestCategoryRepoUpdateNotFound(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("UPDATE categories").
		WithArgs("Beverages", pgxmock.AnyArg(), int64(5)).
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	_, err := repo.Update(context.Background(), &domain.Category{ID: 5, Name: "Beverages"})

	assert.Equal(t, e.KindNotFound, e.KindOf(err))
}

func TestCategoryRepoUpdate(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("UPDATE categories").
		WithArgs("Beverages", pgxmock.AnyArg(), int64(1)).
		WillReturnRows(pgxmock.NewRows(categoryColumns).AddRow(int64(1), "Beverages", ptr("Drinks")))

	got, err := repo.Update(context.Background(), &domain.Category{ID: 1, Name: "Beverages", Description: ptr("Drinks")})

	require.NoError(t, err)
	assert.Equal(t, "Drinks", *got.Description)
}

func TestCategoryRepoDelete(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 1))
}

func TestCategoryRepoDeleteZeroRowsRollsBack(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)

	assert.Equal(t, e.KindNotFound, e.KindOf(err))
}

func TestCategoryRepoDeleteReferencedIsConflict(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1)).
		WillReturnError(fkViolation())
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)

	assert.Equal(t, e.KindConflict, e.KindOf(err))
}

func TestCategoryRepoConnectionLossIsUnclassified(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.GetAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, e.KindInternal, e.KindOf(err))
}
