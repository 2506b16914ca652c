package postgres

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

// ============================================================================
// Fake DBTX
// ============================================================================

type call struct {
	sql  string
	args []any
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.pos-1], nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.rows[r.pos-1])
}

// assign copies values into dest pointers; nil values zero the destination.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		dv.Set(reflect.ValueOf(values[i]))
	}
	return nil
}

type fakeDB struct {
	calls    []call
	row      []fakeRow
	rows     []*fakeRows
	queryErr error
	execErr  error
	execTag  pgconn.CommandTag
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return f.execTag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.rows) == 0 {
		return &fakeRows{}, nil
	}
	next := f.rows[0]
	f.rows = f.rows[1:]
	return next, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{sql, args})
	if len(f.row) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	next := f.row[0]
	f.row = f.row[1:]
	return next
}

var stamp = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func messageRow(id, sender, receiver int64) []any {
	return []any{id, sender, receiver, "hi", false, stamp}
}

// ============================================================================
// Tests
// ============================================================================

func TestCapabilities(t *testing.T) {
	caps := NewWithDB(&fakeDB{}).Capabilities()
	assert.Equal(t, repositories.BackendPostgres, caps.Backend)
	assert.True(t, caps.EnforcesUniqueness)
	assert.True(t, caps.EnforcesReferences)
}

func TestGetUserNotFoundIsAbsent(t *testing.T) {
	db := &fakeDB{}
	repo := NewWithDB(db)

	u, err := repo.GetUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "FROM users WHERE id = $1")
	assert.Equal(t, []any{int64(9)}, db.calls[0].args)
}

func TestGetUserByUsernameScansRow(t *testing.T) {
	id := uuid.New()
	bio := "bio"
	faculty := "science"
	db := &fakeDB{row: []fakeRow{{values: []any{
		int64(3), id, "lina", "lina@example.com", "hash", "teacher", "Lina",
		nil, &bio, nil, nil, &faculty, nil, nil, stamp,
	}}}}
	repo := NewWithDB(db)

	u, err := repo.GetUserByUsername(context.Background(), "lina")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, id, u.UUID)
	assert.Equal(t, models.RoleTeacher, u.Role)
	assert.Equal(t, "bio", *u.Bio)
	assert.Nil(t, u.ProfilePicture)
	require.NotNil(t, u.Faculty)
	assert.Equal(t, models.FacultyScience, *u.Faculty)
	assert.Nil(t, u.AcademicYear)
	assert.Contains(t, db.calls[0].sql, "WHERE username = $1")
}

func TestCreateUserPropagatesUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: repositories.ConstraintEmail}
	db := &fakeDB{row: []fakeRow{{err: pgErr}}}
	repo := NewWithDB(db)

	_, err := repo.CreateUser(context.Background(), models.UserInput{
		Username: "sam", Email: "sam@example.com", Password: "hash", FullName: "Sam", Bio: new(string),
	})
	require.Error(t, err)
	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Same(t, pgErr, got)

	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "INSERT INTO users (username,email,password,role,full_name,")
	assert.Contains(t, db.calls[0].sql, "RETURNING id, uuid, username")
	args := db.calls[0].args
	require.Len(t, args, 12)
	assert.Equal(t, "student", args[3], "role defaults to student")
	assert.Nil(t, args[6], "empty bio is stored as NULL")
}

func TestQueryErrorsPropagateUnchanged(t *testing.T) {
	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	repo := NewWithDB(&fakeDB{queryErr: connErr, execErr: connErr})
	ctx := context.Background()

	_, err := repo.GetCourses(ctx)
	assert.Equal(t, connErr, err)
	_, err = repo.GetTeachers(ctx)
	assert.Equal(t, connErr, err)
	_, err = repo.GetMessagesByUser(ctx, 1)
	assert.Equal(t, connErr, err)
	assert.Equal(t, connErr, repo.MarkMessageAsRead(ctx, 1))
}

func TestGetMessagesByUserRunsSentThenReceived(t *testing.T) {
	db := &fakeDB{rows: []*fakeRows{
		{rows: [][]any{messageRow(2, 5, 6), messageRow(4, 5, 7)}},
		{rows: [][]any{messageRow(1, 6, 5), messageRow(3, 7, 5)}},
	}}
	repo := NewWithDB(db)

	msgs, err := repo.GetMessagesByUser(context.Background(), 5)
	require.NoError(t, err)

	var ids []int64
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)

	require.Len(t, db.calls, 2)
	assert.Contains(t, db.calls[0].sql, "WHERE sender_id = $1 ORDER BY id ASC")
	assert.Contains(t, db.calls[1].sql, "WHERE receiver_id = $1 AND sender_id <> $2 ORDER BY id ASC")
	assert.Equal(t, []any{int64(5), int64(5)}, db.calls[1].args)
}

func TestListsAreNeverNil(t *testing.T) {
	repo := NewWithDB(&fakeDB{})

	courses, err := repo.GetCoursesByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestMarkMessageAsReadMissingIsNoOp(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewWithDB(db)

	require.NoError(t, repo.MarkMessageAsRead(context.Background(), 42))
	require.Len(t, db.calls, 1)
	assert.Equal(t, "UPDATE messages SET is_read = $1 WHERE id = $2", db.calls[0].sql)
	assert.Equal(t, []any{true, int64(42)}, db.calls[0].args)
}

func TestCreateCourseAppliesDefaults(t *testing.T) {
	catID := int64(2)
	db := &fakeDB{row: []fakeRow{{values: []any{
		int64(1), "Calculus", "d", nil, int64(1000), &catID, nil,
		nil, nil, nil, false, nil, "beginner", stamp,
	}}}}
	repo := NewWithDB(db)

	c, err := repo.CreateCourse(context.Background(), models.CourseInput{
		Title: "Calculus", Description: "d", Price: 1000, CategoryID: &catID, Level: "beginner",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.False(t, c.IsOfficial)
	assert.Equal(t, stamp, c.CreatedAt)

	args := db.calls[0].args
	require.Len(t, args, 12)
	assert.Nil(t, args[2], "thumbnail")
	assert.Equal(t, false, args[9], "is_official")
	assert.Contains(t, db.calls[0].sql, "COALESCE(is_official, FALSE) AS is_official")
}

func TestCreateEnrollmentDuplicateSurfacesConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: repositories.ConstraintEnrollmentStudent}
	db := &fakeDB{row: []fakeRow{{err: pgErr}}}
	repo := NewWithDB(db)

	_, err := repo.CreateEnrollment(context.Background(), models.EnrollmentInput{StudentID: 1, CourseID: 2})
	assert.Equal(t, error(pgErr), err)
	assert.Equal(t, []any{int64(1), int64(2), false}, db.calls[0].args)
}

func TestUpdateUserUnknownIDIsAbsent(t *testing.T) {
	db := &fakeDB{}
	repo := NewWithDB(db)

	u, err := repo.UpdateUser(context.Background(), 77, models.UserUpdate{Email: "x@example.com", FullName: "X"})
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Contains(t, db.calls[0].sql, "UPDATE users SET")
	assert.Contains(t, db.calls[0].sql, "WHERE id = $12 RETURNING")
}
