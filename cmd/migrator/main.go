package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"express-hub/internal/lib/config"
	"express-hub/internal/lib/sl"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "roll back every migration")

	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.Database.URL == "" {
		log.Error("database url is required")
		os.Exit(1)
	}

	m, err := migrate.New(cfg.Database.MigrationsPath, cfg.Database.URL)
	if err != nil {
		log.Error("failed to init migrations", sl.Err(err))
		os.Exit(1)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return
		}
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrations applied", slog.Bool("down", down))
}
