package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"textcatalog/internal/domain"
	"textcatalog/internal/domain/entities"
	"textcatalog/internal/ports/input"
	"textcatalog/internal/ports/output"
)

// Missing keys are rendered as MissingPrefix + key + MissingSuffix.
const (
	MissingPrefix = "!"
	MissingSuffix = "!"
)

// Ensure Catalog implements the input.MessageCatalog port.
var _ input.MessageCatalog = (*Catalog)(nil)

// Catalog resolves message keys for one bundle and one locale.
//
// Entries are read from the source at most once, either by an explicit Load
// or by the first GetString. After that the catalog is immutable and safe for
// concurrent use without locking. A failed load leaves the catalog empty.
type Catalog struct {
	bundleID string
	source   output.BundleSource
	locale   language.Tag
	logger   *slog.Logger
	metrics  *Metrics

	once    sync.Once
	view    entities.CatalogView
	loadErr error
	loads   atomic.Int32

	reported sync.Map
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLocale selects the locale used to pick bundle files. Defaults to English.
func WithLocale(tag language.Tag) Option {
	return func(c *Catalog) { c.locale = tag }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Catalog) { c.metrics = m }
}

// NewCatalog builds an unloaded catalog for bundleID backed by source.
func NewCatalog(bundleID string, source output.BundleSource, opts ...Option) *Catalog {
	c := &Catalog{
		bundleID: bundleID,
		source:   source,
		locale:   language.English,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the bundle if it has not been read yet. Concurrent callers
// block until the single load finishes. The returned error is the one from
// that load; the catalog stays usable (and empty) after a failure.
func (c *Catalog) Load(ctx context.Context) error {
	c.once.Do(func() { c.load(ctx) })
	return c.loadErr
}

func (c *Catalog) load(ctx context.Context) {
	c.loads.Add(1)

	var entries map[string]string
	defer func() {
		if r := recover(); r != nil {
			c.loadErr = fmt.Errorf("load bundle %s: panic: %v: %w", c.bundleID, r, domain.ErrMalformedBundle)
			entries = nil
		}
		if c.loadErr != nil {
			c.logger.Warn("i18n: bundle unavailable, lookups will miss",
				"bundle", c.bundleID, "locale", c.locale.String(), "error", c.loadErr)
		} else {
			c.logger.Debug("i18n: bundle loaded",
				"bundle", c.bundleID, "locale", c.locale.String(), "entries", len(entries))
		}
		c.view = entities.NewCatalogView(c.bundleID, c.locale, entries)
		c.metrics.observeLoad(c.bundleID, c.loadErr)
	}()

	if c.source == nil {
		c.loadErr = fmt.Errorf("load bundle %s: no source configured: %w", c.bundleID, domain.ErrBundleNotFound)
		return
	}
	m, err := c.source.Load(ctx, c.bundleID, c.locale)
	if err != nil {
		c.loadErr = fmt.Errorf("load bundle %s: %w", c.bundleID, err)
		return
	}
	entries = m
}

// GetString returns the localized string for key, or "!key!" when the key
// is unknown or the bundle could not be loaded.
func (c *Catalog) GetString(key string) string {
	_ = c.Load(context.Background())

	if s, ok := c.view.Lookup(key); ok {
		c.metrics.observeLookup(c.bundleID, true)
		return s
	}
	c.metrics.observeLookup(c.bundleID, false)
	c.reportMissing(key)
	return MissingPrefix + key + MissingSuffix
}

// Catalog returns a read-only view of the loaded entries, loading them first
// if needed.
func (c *Catalog) Catalog() entities.CatalogView {
	_ = c.Load(context.Background())
	return c.view
}

// Loads reports how many times the source has been read (0 or 1).
func (c *Catalog) Loads() int {
	return int(c.loads.Load())
}

// reportMissing logs the first miss of each key.
func (c *Catalog) reportMissing(key string) {
	if _, seen := c.reported.LoadOrStore(key, struct{}{}); seen {
		return
	}
	attrs := []any{
		"bundle", c.bundleID,
		"locale", c.locale.String(),
		"key", key,
		"error", fmt.Errorf("%s: %w", key, domain.ErrMissingResource),
	}
	if s := Suggest(key, c.view.Keys()); s != "" {
		attrs = append(attrs, "suggestion", s)
	}
	c.logger.Warn("i18n: missing message", attrs...)
}
