// Command seed provisions the users table and a handful of demo accounts.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quoinhq/quoin/internal/app"
	"github.com/quoinhq/quoin/internal/users"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	email      varchar(255) NOT NULL,
	full_name  varchar(255),
	is_active  boolean NOT NULL DEFAULT true,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
`

func main() {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	repo := users.NewRepository(pool)
	demo := []users.CreateUserRequest{
		{Email: "admin@quoin.local", FullName: ptr("Admin")},
		{Email: "alice@quoin.local", FullName: ptr("Alice Example")},
		{Email: "bob@quoin.local", FullName: ptr("Bob Example"), IsActive: ptr(false)},
	}

	for _, in := range demo {
		existing, err := repo.GetByEmail(ctx, in.Email)
		if err != nil {
			log.Fatalf("lookup %s: %v", in.Email, err)
		}
		if existing != nil {
			fmt.Printf("→ %s already seeded\n", in.Email)
			continue
		}
		user, err := repo.Create(ctx, in)
		if err != nil {
			log.Fatalf("seed %s: %v", in.Email, err)
		}
		fmt.Printf("→ seeded %s (%s)\n", user.Email, user.ID)
	}
}

func ptr[T any](v T) *T {
	return &v
}
