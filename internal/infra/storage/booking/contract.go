package booking

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов к БД. Покрывает *sql.DB и
// *sql.Tx, чтобы репозиторий не зависел от способа исполнения.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
