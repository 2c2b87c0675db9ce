package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"textcatalog/internal/domain"
	"textcatalog/internal/infrastructure/i18n"
	"textcatalog/internal/ports/output"
)

var (
	_ output.BundleSource      = (*SQLiteMessageRepository)(nil)
	_ output.MessageRepository = (*SQLiteMessageRepository)(nil)
)

const sqliteUpsertMessage = `INSERT INTO messages (bundle_id, locale, message_key, message_text)
VALUES (?, ?, ?, ?)
ON CONFLICT (bundle_id, locale, message_key) DO UPDATE SET message_text = excluded.message_text, updated_at = CURRENT_TIMESTAMP`

// SQLiteMessageRepository stores bundles in a local sqlite file.
type SQLiteMessageRepository struct {
	db *sql.DB
}

func NewSQLiteMessageRepository(db *sql.DB) *SQLiteMessageRepository {
	return &SQLiteMessageRepository{db: db}
}

func (r *SQLiteMessageRepository) Load(ctx context.Context, bundleID string, tag language.Tag) (map[string]string, error) {
	candidates := i18n.Candidates(tag)
	args := make([]any, 0, len(candidates)+1)
	args = append(args, bundleID)
	for _, c := range candidates {
		args = append(args, c)
	}
	query := `SELECT locale, message_key, message_text FROM messages WHERE bundle_id = ? AND locale IN (` +
		strings.TrimSuffix(strings.Repeat("?, ", len(candidates)), ", ") + `)`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	var collected []messageRow
	for rows.Next() {
		var m messageRow
		if err := rows.Scan(&m.Locale, &m.Key, &m.Text); err != nil {
			return nil, fmt.Errorf("scan messages: %w", err)
		}
		collected = append(collected, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}

	entries, ok := mergeRows(collected, tag)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", bundleID, tag, domain.ErrBundleNotFound)
	}
	return entries, nil
}

func (r *SQLiteMessageRepository) Upsert(ctx context.Context, bundleID, locale string, entries map[string]string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, sqliteUpsertMessage)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()
		for k, v := range entries {
			if _, err := stmt.ExecContext(ctx, bundleID, locale, k, v); err != nil {
				return fmt.Errorf("upsert %s: %w", k, err)
			}
		}
		return nil
	})
}

func (r *SQLiteMessageRepository) Locales(ctx context.Context, bundleID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT locale FROM messages WHERE bundle_id = ? ORDER BY locale`, bundleID)
	if err != nil {
		return nil, fmt.Errorf("select locales: %w", err)
	}
	defer rows.Close()

	var locales []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan locales: %w", err)
		}
		locales = append(locales, l)
	}
	return locales, rows.Err()
}
