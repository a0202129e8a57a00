package pgdb

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func fkViolation() error {
	return &pgconn.PgError{
		Code:    "23503",
		Message: `insert or update on table "products" violates foreign key constraint "products_category_id_fkey"`,
	}
}

func ptr[T any](v T) *T {
	return &v
}
