package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"leavedesk/internal/platform/config"
)

func TestSeedIsIdempotent(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		SeedAdminName:     "Seed Admin",
		SeedAdminEmail:    fmt.Sprintf("seed-%d@test.local", time.Now().UnixNano()),
		SeedAdminPassword: "ChangeMe123!",
	}

	ctx := context.Background()
	pool, err := Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if err := Migrate(ctx, pool, "../../migrations"); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	if err := Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin user, got %d", count)
	}

	// The admin gets a ledger row like any roster member.
	var balances int
	err = pool.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM leave_balances b
    JOIN users u ON u.id = b.user_id
    WHERE u.email = $1
  `, cfg.SeedAdminEmail).Scan(&balances)
	if err != nil {
		t.Fatalf("balance count failed: %v", err)
	}
	if balances != 1 {
		t.Fatalf("expected one ledger row for the seeded admin, got %d", balances)
	}
}
