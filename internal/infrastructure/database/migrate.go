package database

import (
	"fmt"
	"net/url"

	"drug-insights-hub/config"
	"drug-insights-hub/internal/domain/entity"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. With a migrations directory configured
// it runs the versioned SQL migrations; otherwise it falls back to AutoMigrate
// as a development convenience.
func Migrate(db *gorm.DB, cfg config.DBConfig) error {
	if cfg.Migrations != "" {
		return runSQLMigrations(cfg)
	}

	models := []interface{}{
		&entity.Affiliation{},
		&entity.User{},
		&entity.UserProfile{},
		&entity.Drug{},
		&entity.ClinicalTrial{},
		&entity.Publication{},
		&entity.AuditLog{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}

	logrus.Info("Schema migrated via AutoMigrate")
	return nil
}

func runSQLMigrations(cfg config.DBConfig) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name,
	)

	m, err := migrate.New("file://"+cfg.Migrations, dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	logrus.Infof("Schema migrated from %s", cfg.Migrations)
	return nil
}
