package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsDir é o diretório das migrações dentro do FS embutido.
const MigrationsDir = "migrations"

// Migrate aplica todas as migrações pendentes.
func Migrate(db *sql.DB) error {
	return RunMigrations(db, "up")
}

// RunMigrations executa um comando do goose (up, down, status, redo, version...)
// sobre as migrações embutidas no binário.
func RunMigrations(db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("database: goose dialect: %w", err)
	}

	if err := goose.Run(command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("database: goose %s: %w", command, err)
	}
	return nil
}
