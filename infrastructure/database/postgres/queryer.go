package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx, permitindo que os repositórios
// executem tanto fora quanto dentro de uma transação em andamento.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
