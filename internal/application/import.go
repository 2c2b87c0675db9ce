package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"textcatalog/internal/domain"
	"textcatalog/internal/ports/input"
	"textcatalog/internal/ports/output"
)

var _ input.ImportUseCase = (*ImportService)(nil)

// ImportService copies resource-bundle files into a message store, one
// locale at a time and without merging parents, so the store keeps the same
// parent chain as the files.
type ImportService struct {
	reader output.LocaleReader
	repo   output.MessageRepository
	logger *slog.Logger
}

func NewImportService(reader output.LocaleReader, repo output.MessageRepository, logger *slog.Logger) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{reader: reader, repo: repo, logger: logger}
}

// Import writes the root locale and each of locales, returning the number of
// entries written. The root file is required; missing locale files are
// skipped.
func (s *ImportService) Import(ctx context.Context, bundleID string, locales []string) (int, error) {
	total := 0
	for i, locale := range append([]string{""}, locales...) {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		entries, err := s.reader.ReadLocale(bundleID, locale)
		if errors.Is(err, domain.ErrBundleNotFound) && i > 0 {
			s.logger.Warn("import: locale file not found, skipped", "bundle", bundleID, "locale", locale)
			continue
		}
		if err != nil {
			return total, fmt.Errorf("import %s locale %q: %w", bundleID, locale, err)
		}
		if err := s.repo.Upsert(ctx, bundleID, locale, entries); err != nil {
			return total, fmt.Errorf("import %s locale %q: %w", bundleID, locale, err)
		}
		s.logger.Info("import: locale imported", "bundle", bundleID, "locale", locale, "entries", len(entries))
		total += len(entries)
	}
	return total, nil
}
