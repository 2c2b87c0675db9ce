package input

import (
	"context"

	"textcatalog/internal/domain/entities"
)

// MessageCatalog is what UI collaborators depend on to display text.
type MessageCatalog interface {
	Load(ctx context.Context) error
	GetString(key string) string
	Catalog() entities.CatalogView
}

type ImportUseCase interface {
	Import(ctx context.Context, bundleID string, locales []string) (int, error)
}
