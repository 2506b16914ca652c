// Package memory implements repositories.Storage in process memory.
//
// Each entity family owns its own table with a private id counter starting
// at 1. One RWMutex guards every table so that an id is never handed out
// twice. Records are copied on the way in and on the way out.
package memory

import (
	"sync"
	"time"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

var _ repositories.Storage = (*Repository)(nil)

// table is an insertion-ordered map keyed by an auto-incrementing id. Rows
// leave the table only through clone.
type table[T any] struct {
	rows  map[int64]*T
	order []int64
	next  int64
	clone func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{rows: make(map[int64]*T), next: 1, clone: clone}
}

// nextID reserves the next identity. Callers hold the write lock.
func (t *table[T]) nextID() int64 {
	id := t.next
	t.next++
	return id
}

// insert stores row and returns a copy for the caller.
func (t *table[T]) insert(id int64, row *T) *T {
	t.rows[id] = row
	t.order = append(t.order, id)
	return t.clone(row)
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// lookup returns a copy of the row with id, or nil.
func (t *table[T]) lookup(id int64) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return t.clone(row)
}

// filter returns copies of the rows matching keep, in insertion order.
func (t *table[T]) filter(keep func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// find returns a copy of the first row matching match, in insertion order.
func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return t.clone(row)
		}
	}
	return nil
}

// Option configures a Repository.
type Option func(*Repository)

// WithUniqueness makes CreateUser, UpdateUser and CreateEnrollment reject
// duplicates the way the SQL schema does.
func WithUniqueness() Option {
	return func(r *Repository) { r.enforceUniqueness = true }
}

// WithClock overrides the time source used for created/enrolled/sent stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithoutDefaults skips the admin user and default categories created on
// construction.
func WithoutDefaults() Option {
	return func(r *Repository) { r.skipDefaults = true }
}

// Repository is the in-memory Storage backend.
type Repository struct {
	mu sync.RWMutex

	universities *table[models.University]
	users        *table[models.User]
	categories   *table[models.Category]
	courses      *table[models.Course]
	materials    *table[models.Material]
	enrollments  *table[models.Enrollment]
	reviews      *table[models.Review]
	messages     *table[models.Message]

	now               func() time.Time
	enforceUniqueness bool
	skipDefaults      bool
}

// New creates an in-memory repository seeded with the default admin user and
// the default categories.
func New(opts ...Option) *Repository {
	r := &Repository{
		universities: newTable((*models.University).Clone),
		users:        newTable((*models.User).Clone),
		categories:   newTable((*models.Category).Clone),
		courses:      newTable((*models.Course).Clone),
		materials:    newTable((*models.Material).Clone),
		enrollments:  newTable((*models.Enrollment).Clone),
		reviews:      newTable((*models.Review).Clone),
		messages:     newTable((*models.Message).Clone),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.skipDefaults {
		r.seedDefaults()
	}
	return r
}

// Capabilities reports that no foreign keys are checked and uniqueness only
// when WithUniqueness was given.
func (r *Repository) Capabilities() repositories.Capabilities {
	return repositories.Capabilities{
		Backend:            repositories.BackendMemory,
		EnforcesUniqueness: r.enforceUniqueness,
		EnforcesReferences: false,
	}
}

// Close is a no-op.
func (r *Repository) Close() {}
