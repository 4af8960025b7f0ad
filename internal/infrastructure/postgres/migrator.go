package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// RunMigrations aplica las migraciones pendientes del esquema.
func RunMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New(
		"file://"+migrationsPath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("crear instancia de migrate: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("migraciones: sin cambios")
			return nil
		}
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	log.Info().Msg("migraciones: aplicadas")
	return nil
}

// RunMigrationsDown revierte la última migración aplicada.
func RunMigrationsDown(databaseURL, migrationsPath string) error {
	m, err := migrate.New(
		"file://"+migrationsPath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("crear instancia de migrate: %w", err)
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("revertir migración: %w", err)
	}

	log.Info().Msg("migraciones: última revertida")
	return nil
}
