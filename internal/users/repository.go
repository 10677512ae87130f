package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quoinhq/quoin/internal/platform/httpx"
)

// Querier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx, so the
// repository can run against a request-scoped session or the pool directly.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const userColumns = "id, email, full_name, is_active, created_at, updated_at"

// Repository provides PostgreSQL backed persistence for users. Every
// operation is a single autocommitted statement.
type Repository struct {
	q Querier
}

// NewRepository constructs a repository bound to one session.
func NewRepository(q Querier) *Repository {
	return &Repository{q: q}
}

// Create inserts a user and returns the persisted row, picking up the
// server-generated id and timestamps. A lost race against the unique email
// index surfaces as a Conflict, not a raw constraint error.
func (r *Repository) Create(ctx context.Context, in CreateUserRequest) (User, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	row := r.q.QueryRow(ctx,
		`INSERT INTO users (email, full_name, is_active) VALUES ($1, $2, $3) RETURNING `+userColumns,
		in.Email, in.FullName, isActive)

	user, err := scanUser(row)
	if err != nil {
		return User{}, mapUniqueViolation(err, in.Email)
	}
	return user, nil
}

// Get returns the user with the given id, or nil when absent.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users in insertion order, honoring the caller's offset and
// limit unchecked.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies only the fields present in the patch and refreshes
// updated_at, returning the persisted row. An empty patch is a no-op.
func (r *Repository) Update(ctx context.Context, user User, in UpdateUserRequest) (User, error) {
	var sets []string
	var args []any

	if in.Email != nil {
		args = append(args, *in.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if in.FullName != nil {
		args = append(args, *in.FullName)
		sets = append(sets, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if in.IsActive != nil {
		args = append(args, *in.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(sets) == 0 {
		return user, nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, user.ID)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	updated, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		email := user.Email
		if in.Email != nil {
			email = *in.Email
		}
		return User{}, mapUniqueViolation(err, email)
	}
	return updated, nil
}

// Delete removes the user. Hard delete, no tombstone.
func (r *Repository) Delete(ctx context.Context, user User) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	return err
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

// mapUniqueViolation turns a Postgres unique-violation (SQLSTATE 23505) into
// the Conflict error kind. The unique index is the true arbiter when two
// concurrent creates pass the service pre-check.
func mapUniqueViolation(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.Conflict(fmt.Sprintf("Email '%s' is already registered", email))
	}
	return err
}
