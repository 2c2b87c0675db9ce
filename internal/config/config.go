package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Sources supported by CATALOG_SOURCE.
const (
	SourceProperties = "properties"
	SourceTOML       = "toml"
	SourcePostgres   = "postgres"
	SourceSQLite     = "sqlite"
)

var sources = []string{SourceProperties, SourceTOML, SourcePostgres, SourceSQLite}

type Config struct {
	Source         string `mapstructure:"catalog_source"`
	BundleID       string `mapstructure:"catalog_bundle"`
	Locale         string `mapstructure:"catalog_locale"`
	BundleDir      string `mapstructure:"catalog_dir"`
	DatabaseURL    string `mapstructure:"database_url"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	MigrationsPath string `mapstructure:"migrations_path"`
	LogLevel       string `mapstructure:"log_level"`
}

// Load charge la configuration depuis les variables d'environnement.
// La validation est faite par l'appelant, une fois les options de la ligne de commande appliquées.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("catalog_source", SourceProperties)
	v.SetDefault("catalog_bundle", "texteditor.messages")
	v.SetDefault("catalog_locale", "")
	v.SetDefault("catalog_dir", "")
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "catalog.db")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &c, nil
}

// Validate applique toutes les règles sur la configuration chargée.
func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if !slices.Contains(sources, c.Source) {
		return fmt.Errorf("config: CATALOG_SOURCE invalide (%q), valeurs possibles: %s", c.Source, strings.Join(sources, ", "))
	}

	if strings.TrimSpace(c.BundleID) == "" {
		return fmt.Errorf("config: CATALOG_BUNDLE est requis et ne peut pas être vide")
	}
	if strings.HasPrefix(c.BundleID, ".") || strings.HasSuffix(c.BundleID, ".") || strings.ContainsAny(c.BundleID, "/\\ ") {
		return fmt.Errorf("config: CATALOG_BUNDLE invalide (%q): identifiant pointé attendu", c.BundleID)
	}

	switch c.Source {
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/catalog?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	case SourceSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH est requis pour la source sqlite")
		}
	}

	return nil
}
