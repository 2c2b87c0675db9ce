package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"textcatalog/internal/domain"
)

type fakeSource struct {
	entries map[string]string
	err     error
	panics  bool
	delay   time.Duration
	calls   atomic.Int32
	gotTag  language.Tag
}

func (f *fakeSource) Load(_ context.Context, _ string, tag language.Tag) (map[string]string, error) {
	f.calls.Add(1)
	f.gotTag = tag
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panics {
		panic("corrupt bundle")
	}
	return f.entries, f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogGetString(t *testing.T) {
	src := &fakeSource{entries: map[string]string{"Editor.save.label": "Save"}}
	c := NewCatalog("texteditor.messages", src, WithLogger(quietLogger()))

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "present key", key: "Editor.save.label", want: "Save"},
		{name: "absent key", key: "Editor.unknown.key", want: "!Editor.unknown.key!"},
		{name: "empty key", key: "", want: "!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.GetString(tt.key))
		})
	}
}

func TestCatalogLoadsOnce(t *testing.T) {
	src := &fakeSource{entries: map[string]string{"k": "v"}}
	c := NewCatalog("b", src, WithLogger(quietLogger()))

	assert.Equal(t, 0, c.Loads())
	for range 10 {
		assert.Equal(t, "v", c.GetString("k"))
		assert.Equal(t, "!x!", c.GetString("x"))
	}
	require.NoError(t, c.Load(context.Background()))
	_ = c.Catalog()

	assert.Equal(t, 1, c.Loads())
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestCatalogUnloadable(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
		code string
	}{
		{name: "not found", src: &fakeSource{err: domain.ErrBundleNotFound}, code: "bundle_not_found"},
		{name: "malformed", src: &fakeSource{err: domain.ErrMalformedBundle}, code: "malformed_bundle"},
		{name: "panic", src: &fakeSource{panics: true}, code: "malformed_bundle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog("b", tt.src, WithLogger(quietLogger()))

			err := c.Load(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.code, domain.Code(err))

			assert.NotPanics(t, func() {
				assert.Equal(t, "!anything!", c.GetString("anything"))
				assert.Equal(t, "!Editor.save.label!", c.GetString("Editor.save.label"))
			})
			assert.Equal(t, 0, c.Catalog().Len())
			assert.Equal(t, 1, c.Loads(), "a failed load is terminal")

			// the same error is reported on every Load call
			assert.Equal(t, err, c.Load(context.Background()))
		})
	}
}

func TestCatalogNilSource(t *testing.T) {
	c := NewCatalog("b", nil, WithLogger(quietLogger()))
	assert.Equal(t, "!k!", c.GetString("k"))
	assert.ErrorIs(t, c.Load(context.Background()), domain.ErrBundleNotFound)
}

func TestCatalogConcurrentFirstAccess(t *testing.T) {
	src := &fakeSource{
		entries: map[string]string{"x": "value"},
		delay:   20 * time.Millisecond,
	}
	c := NewCatalog("b", src, WithLogger(quietLogger()))

	const callers = 64
	results := make([]string, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			key := "x"
			if i%2 == 1 {
				key = "y"
			}
			results[i] = c.GetString(key)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for i, got := range results {
		if i%2 == 1 {
			assert.Equal(t, "!y!", got)
		} else {
			assert.Equal(t, "value", got)
		}
	}
}

func TestCatalogView(t *testing.T) {
	src := &fakeSource{entries: map[string]string{"b": "2", "a": "1"}}
	c := NewCatalog("texteditor.messages", src, WithLocale(language.German), WithLogger(quietLogger()))

	v := c.Catalog()
	assert.Equal(t, "texteditor.messages", v.BundleID())
	assert.Equal(t, language.German, v.Locale())
	assert.Equal(t, language.German, src.gotTag)
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	// the view hands out copies
	keys := v.Keys()
	keys[0] = "changed"
	assert.Equal(t, "1", c.GetString("a"))
}

func TestCatalogMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := NewCatalog("b", &fakeSource{entries: map[string]string{"k": "v"}},
		WithMetrics(m), WithLogger(quietLogger()))

	c.GetString("k")
	c.GetString("k")
	c.GetString("missing")

	assert.InDelta(t, 1, testutil.ToFloat64(m.loads.WithLabelValues("b", "ok")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.lookups.WithLabelValues("b", "hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues("b", "miss")), 0)

	failed := NewCatalog("broken", &fakeSource{err: errors.New("io")}, WithMetrics(m), WithLogger(quietLogger()))
	failed.GetString("k")
	assert.InDelta(t, 1, testutil.ToFloat64(m.loads.WithLabelValues("broken", "error")), 0)
}

type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler { return h }

func TestCatalogReportsMissingOnce(t *testing.T) {
	h := &recordHandler{}
	c := NewCatalog("b", &fakeSource{entries: map[string]string{"Editor.save.label": "Save"}},
		WithLogger(slog.New(h)))

	c.GetString("Editor.save.lable")
	c.GetString("Editor.save.lable")

	var misses []slog.Record
	for _, r := range h.records {
		if r.Message == "i18n: missing message" {
			misses = append(misses, r)
		}
	}
	require.Len(t, misses, 1)

	var suggestion string
	var missErr error
	misses[0].Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "suggestion":
			suggestion = a.Value.String()
		case "error":
			missErr, _ = a.Value.Any().(error)
		}
		return true
	})
	assert.Equal(t, "Editor.save.label", suggestion)
	assert.ErrorIs(t, missErr, domain.ErrMissingResource)
}
