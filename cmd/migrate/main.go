package main

import (
	"flag"
	"fmt"
	"os"

	"shop/config"
	logs "shop/internal/infra/log"
	"shop/internal/infra/persistence/migration"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Usage: migrate [-direction up|down]
func main() {
	direction := flag.String("direction", string(migration.Up), "Migration direction (up or down)")
	flag.Parse()

	if err := run(migration.Direction(*direction)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(direction migration.Direction) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return migration.Run(sqlDB, direction, logger)
}
