package sqlite

import (
	"database/sql"
	"fmt"

	"travel-backoffice/internal/invoice/repository"
	"travel-backoffice/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the invoice domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("invoice/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("invoice/repository/sqlite.%s", method)
}
