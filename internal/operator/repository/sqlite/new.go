package sqlite

import (
	"database/sql"
	"fmt"

	"travel-backoffice/internal/operator/repository"
	"travel-backoffice/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the operator domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("operator/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("operator/repository/sqlite.%s", method)
}
