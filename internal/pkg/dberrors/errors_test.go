package dberrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: repositories.ConstraintEmail}
	memDup := &repositories.UniqueViolationError{Constraint: repositories.ConstraintUsername}

	tests := []struct {
		name        string
		err         error
		constraints []string
		want        bool
	}{
		{"nil", nil, nil, false},
		{"plain error", errors.New("boom"), nil, false},
		{"pg any constraint", pgDup, nil, true},
		{"pg matching constraint", pgDup, []string{repositories.ConstraintEmail}, true},
		{"pg other constraint", pgDup, []string{repositories.ConstraintUsername}, false},
		{"pg wrapped", fmt.Errorf("create user: %w", pgDup), []string{repositories.ConstraintEmail}, true},
		{"pg foreign key", &pgconn.PgError{Code: CodeForeignKeyViolation}, nil, false},
		{"memory any constraint", memDup, nil, true},
		{"memory matching", memDup, []string{repositories.ConstraintEmail, repositories.ConstraintUsername}, true},
		{"memory other", memDup, []string{repositories.ConstraintEnrollmentStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraints...))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: CodeForeignKeyViolation}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: CodeUniqueViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("x")))
}

func TestIsConnectivity(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	assert.True(t, IsConnectivity(opErr))
	assert.True(t, IsConnectivity(fmt.Errorf("ping: %w", context.DeadlineExceeded)))
	assert.False(t, IsConnectivity(nil))
	assert.False(t, IsConnectivity(&pgconn.PgError{Code: CodeUniqueViolation}))
}
