package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gosupply/config"
	"gosupply/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("migrate: .env not loaded, using system environment: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatalf("migrate: STORAGE_DRIVER=%s has no schema to migrate", cfg.StorageDriver)
	}

	verbose := flag.Bool("v", false, "print goose output")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("migrate: failed to connect to DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("migrate: failed to close DB: %v", err)
		}
	}()

	if !*verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	if err := database.RunMigrations(db, command, arguments[1:]...); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Printf("goose %s success\n", command)
}
