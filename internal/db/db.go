package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "github.com/randogapp/randog/internal/migrations"
	"github.com/randogapp/randog/pkg/config"
)

// Migrate opens a short-lived database/sql connection and runs the goose
// command against the registered Go migrations.
func Migrate(cfg *config.Config, command string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	conn, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}
	defer conn.Close()

	// Migrations are compiled in; the directory argument only scopes the
	// version table scan.
	switch command {
	case "up":
		return goose.Up(conn, ".")
	case "down":
		return goose.Down(conn, ".")
	case "status":
		return goose.Status(conn, ".")
	case "reset":
		return goose.Reset(conn, ".")
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
