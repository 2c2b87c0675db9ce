package output

import "context"

type MessageRepository interface {
	Upsert(ctx context.Context, bundleID, locale string, entries map[string]string) error
	Locales(ctx context.Context, bundleID string) ([]string, error)
}
