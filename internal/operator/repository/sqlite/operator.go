package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-backoffice/internal/operator"
	repo "travel-backoffice/internal/operator/repository"
)

const selectOperator = `SELECT o.id, o.username, o.password_hash, o.created_at FROM operators o`

// CreateFirstOperator inserts the operator in the same statement that checks the table is empty.
func (r *implRepository) CreateFirstOperator(ctx context.Context, opt repo.CreateOperatorOptions) (operator.Operator, error) {
	const query = `
		INSERT INTO operators (id, username, password_hash, created_at)
		SELECT ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM operators)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.Username, opt.PasswordHash, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFirstOperator"), err)
		return operator.Operator{}, repo.ErrFailedToInsert
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return operator.Operator{}, repo.ErrNotFirst
	}

	return operator.Operator{
		ID:           opt.ID,
		Username:     opt.Username,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
	}, nil
}

// GetOneOperator retrieves a single Operator by the provided filters (AND condition).
// Returns zero-value Operator (ID == "") when not found.
func (r *implRepository) GetOneOperator(ctx context.Context, opt repo.GetOneOperatorOptions) (operator.Operator, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "o.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Username != "" {
		conditions = append(conditions, "o.username = ?")
		args = append(args, opt.Username)
	}
	if len(conditions) == 0 {
		return operator.Operator{}, nil
	}

	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectOperator, strings.Join(conditions, " AND "))
	var o operator.Operator
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.Username, &o.PasswordHash, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return operator.Operator{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOperator"), err)
		return operator.Operator{}, repo.ErrFailedToGet
	}
	return o, nil
}
