// Package postgres implements repositories.Storage on PostgreSQL.
//
// Every operation is one statement (two for GetMessagesByUser) with no
// explicit transaction. Errors from the driver are returned as they are, so
// callers can inspect *pgconn.PgError for constraint violations.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

var _ repositories.Storage = (*Repository)(nil)

// DBTX is the subset of *pgxpool.Pool the repository uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the PostgreSQL Storage backend.
type Repository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// New creates a repository on top of a connection pool.
func New(pool *pgxpool.Pool) *Repository {
	return NewWithDB(pool)
}

// NewWithDB creates a repository on top of any DBTX.
func NewWithDB(db DBTX) *Repository {
	return &Repository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Capabilities reports that the schema's unique and foreign key constraints
// are enforced by the database.
func (r *Repository) Capabilities() repositories.Capabilities {
	return repositories.Capabilities{
		Backend:            repositories.BackendPostgres,
		EnforcesUniqueness: true,
		EnforcesReferences: true,
	}
}

// Close closes the underlying pool when the repository owns one.
func (r *Repository) Close() {
	if pool, ok := r.db.(*pgxpool.Pool); ok && pool != nil {
		pool.Close()
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// getOne runs a single-row query. A missing row yields (nil, nil).
func getOne[T any](ctx context.Context, r *Repository, q squirrel.Sqlizer, scan func(scanner) (*T, error)) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rec, err := scan(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// getMany runs a multi-row query and always returns a non-nil slice on success.
func getMany[T any](ctx context.Context, r *Repository, q squirrel.Sqlizer, scan func(scanner) (*T, error)) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// insertOne runs an INSERT ... RETURNING and scans the stored row.
func insertOne[T any](ctx context.Context, r *Repository, q squirrel.Sqlizer, scan func(scanner) (*T, error)) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}
	return scan(r.db.QueryRow(ctx, sql, args...))
}

// enumArg converts an optional enum to a driver argument.
func enumArg[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

// enumPtr converts a scanned nullable enum back to its Go type.
func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// timeZero is passed to record constructors whose timestamps the database sets.
var timeZero time.Time

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
