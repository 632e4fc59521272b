package sqlite

import (
	"database/sql"
	"fmt"

	"travel-backoffice/internal/payment/repository"
	"travel-backoffice/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the payment domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("payment/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("payment/repository/sqlite.%s", method)
}
