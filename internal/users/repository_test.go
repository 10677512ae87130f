package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoinhq/quoin/internal/platform/httpx"
)

func TestMapUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	err := mapUniqueViolation(fmt.Errorf("insert: %w", pgErr), "a@x.com")

	var appErr *httpx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.Equal(t, "Email 'a@x.com' is already registered", appErr.Message)
}

func TestMapUniqueViolationPassesOtherErrorsThrough(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(cause), mapUniqueViolation(cause, "a@x.com"))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapUniqueViolation(plain, "a@x.com"))
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	// No fields supplied: no statement runs, the record comes back unchanged.
	repo := NewRepository(nil)
	user := User{ID: uuid.New(), Email: "a@x.com", IsActive: true}

	got, err := repo.Update(context.Background(), user, UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, user, got)
}
