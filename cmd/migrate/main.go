// Command migrate applies schema migrations against the configured
// postgres database.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/infrastructure/config"
	"github.com/ledgerline/backend/internal/infrastructure/logger"
	"github.com/ledgerline/backend/internal/infrastructure/migration"
)

func main() {
	var (
		configPath = flag.String("config", "", "directory containing config.toml")
		sourcePath = flag.String("path", "migrations", "directory containing migration files")
		down       = flag.Bool("down", false, "roll back the most recent migration")
		showVer    = flag.Bool("version", false, "print the current schema version and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	m, err := migration.New(db, *sourcePath, log)
	if err != nil {
		log.Fatal("init migrator", zap.Error(err))
	}
	defer m.Close()

	switch {
	case *showVer:
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatal("read version", zap.Error(err))
		}
		log.Info("schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	case *down:
		if err := m.Down(); err != nil {
			log.Fatal("migrate down", zap.Error(err))
		}
	default:
		if err := m.Up(); err != nil {
			log.Fatal("migrate up", zap.Error(err))
		}
	}
}
