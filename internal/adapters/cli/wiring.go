package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"textcatalog/internal/config"
	"textcatalog/internal/domain"
	"textcatalog/internal/infrastructure/database"
	"textcatalog/internal/infrastructure/i18n"
	"textcatalog/internal/ports/output"
)

func bundleFS(s *config.Config) fs.FS {
	if s.BundleDir == "" {
		return i18n.EmbeddedBundles()
	}
	return os.DirFS(s.BundleDir)
}

// openSource returns the bundle source selected by s and a func releasing it.
func openSource(ctx context.Context, s *config.Config, locale language.Tag) (output.BundleSource, func(), error) {
	switch s.Source {
	case config.SourceProperties:
		return i18n.NewPropertiesSource(bundleFS(s)), func() {}, nil
	case config.SourceTOML:
		return i18n.NewTOMLSource(bundleFS(s), language.English), func() {}, nil
	case config.SourcePostgres, config.SourceSQLite:
		repo, closeFn, err := openStore(ctx, s)
		if err != nil {
			return nil, nil, err
		}
		return repo.(output.BundleSource), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("source %q: %w", s.Source, domain.ErrUnknownSource)
	}
}

// openStore opens the SQL message store selected by s.
func openStore(ctx context.Context, s *config.Config) (output.MessageRepository, func(), error) {
	switch s.Source {
	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, s.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return database.NewMessageRepository(pool), pool.Close, nil
	case config.SourceSQLite:
		db, err := database.OpenSQLite(s.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return database.NewSQLiteMessageRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("source %q is not a message store: %w", s.Source, domain.ErrUnknownSource)
	}
}

// migrate applies the schema of the store selected by s.
func migrate(s *config.Config) error {
	switch s.Source {
	case config.SourcePostgres:
		return database.RunMigrations(s.DatabaseURL, filepath.Join(s.MigrationsPath, "postgres"))
	case config.SourceSQLite:
		db, err := database.OpenSQLite(s.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		defer func(db *sql.DB) { _ = db.Close() }(db)
		return database.RunSQLiteMigrations(db, filepath.Join(s.MigrationsPath, "sqlite"))
	default:
		return fmt.Errorf("source %q has no schema: %w", s.Source, domain.ErrUnknownSource)
	}
}
