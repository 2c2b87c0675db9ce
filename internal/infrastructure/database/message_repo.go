package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	"textcatalog/internal/domain"
	"textcatalog/internal/infrastructure/i18n"
	"textcatalog/internal/ports/output"
)

var (
	_ output.BundleSource      = (*MessageRepository)(nil)
	_ output.MessageRepository = (*MessageRepository)(nil)
)

const (
	pgSelectMessages = `SELECT locale, message_key, message_text FROM messages
WHERE bundle_id = $1 AND locale = ANY($2)`
	pgUpsertMessage = `INSERT INTO messages (bundle_id, locale, message_key, message_text)
VALUES ($1, $2, $3, $4)
ON CONFLICT (bundle_id, locale, message_key) DO UPDATE SET message_text = EXCLUDED.message_text, updated_at = now()`
	pgSelectLocales = `SELECT DISTINCT locale FROM messages WHERE bundle_id = $1 ORDER BY locale`
)

// MessageRepository stores bundles in PostgreSQL.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Load(ctx context.Context, bundleID string, tag language.Tag) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, pgSelectMessages, bundleID, i18n.Candidates(tag))
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByPos[messageRow])
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	entries, ok := mergeRows(collected, tag)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", bundleID, tag, domain.ErrBundleNotFound)
	}
	return entries, nil
}

func (r *MessageRepository) Upsert(ctx context.Context, bundleID, locale string, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for k, v := range entries {
		batch.Queue(pgUpsertMessage, bundleID, locale, k, v)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert messages: %w", err)
	}
	return nil
}

func (r *MessageRepository) Locales(ctx context.Context, bundleID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, pgSelectLocales, bundleID)
	if err != nil {
		return nil, fmt.Errorf("select locales: %w", err)
	}
	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan locales: %w", err)
	}
	return locales, nil
}
