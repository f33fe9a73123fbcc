package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/monitoring"
	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
)

const indexPageTag = "index-page"

func GetIndexPageCacheKey(page int) string {
	return fmt.Sprintf("index-page#%d", page)
}

// PageEntry is a rendered listing kept until ExpiresAt.
type PageEntry struct {
	Body      []byte    `msgpack:"body"`
	ExpiresAt time.Time `msgpack:"expires_at"`
}

// PageCache keeps rendered pages for a fixed window.
// Entries are served verbatim until they expire or get cleared, even if the
// underlying data changed in between.
type PageCache struct {
	marshal *marshaler.Marshaler
	window  time.Duration
	now     func() time.Time
	flush   func()

	mu   sync.Mutex
	keys map[string]time.Time
}

type PageCacheOption func(*PageCache)

// WithClock replaces the wall clock used to stamp and check expiry.
func WithClock(now func() time.Time) PageCacheOption {
	return func(v *PageCache) {
		v.now = now
	}
}

// WithFlush runs flush after every successful write, stores that buffer writes
// use it to make the entry readable before Populate returns.
func WithFlush(flush func()) PageCacheOption {
	return func(v *PageCache) {
		v.flush = flush
	}
}

func NewPageCache(manager gocache.CacheInterface[any], window time.Duration, opts ...PageCacheOption) *PageCache {
	pc := &PageCache{
		marshal: marshaler.New(manager),
		window:  window,
		now:     time.Now,
		keys:    make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

func (v *PageCache) Window() time.Duration {
	return v.window
}

// Read returns the stored body when the entry exists and is still inside its window.
// Expired entries are dropped on the way.
func (v *PageCache) Read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := v.marshal.Get(ctx, key, new(PageEntry))
	if err != nil {
		return nil, false
	}
	entry, ok := raw.(*PageEntry)
	if !ok {
		return nil, false
	}
	if !v.now().Before(entry.ExpiresAt) {
		v.forget(ctx, key)
		return nil, false
	}
	return entry.Body, true
}

func (v *PageCache) Populate(ctx context.Context, key string, body []byte) error {
	expiresAt := v.now().Add(v.window)
	if err := v.marshal.Set(
		ctx,
		key,
		PageEntry{Body: body, ExpiresAt: expiresAt},
		store.WithExpiration(v.window),
		store.WithTags([]string{indexPageTag}),
	); err != nil {
		return fmt.Errorf("unable to cache page %s: %v", key, err)
	}
	if v.flush != nil {
		v.flush()
	}

	v.mu.Lock()
	v.keys[key] = expiresAt
	v.mu.Unlock()
	return nil
}

// PageRenderer renders the requested page and reports the page number it resolved to.
type PageRenderer func(page int) (body []byte, resolved int, err error)

// Serve answers the page from the cache or renders it.
// Rendered bodies are stored under the resolved number, so out of range requests
// never get entries of their own.
// Two callers missing at the same time both render, the last write wins.
func (v *PageCache) Serve(ctx context.Context, page int, render PageRenderer) ([]byte, error) {
	page = max(page, 1)
	if body, ok := v.Read(ctx, GetIndexPageCacheKey(page)); ok {
		monitoring.PageCacheRequests.WithLabelValues("hit").Inc()
		return body, nil
	}
	monitoring.PageCacheRequests.WithLabelValues("miss").Inc()

	body, resolved, err := render(page)
	if err != nil {
		return nil, err
	}
	key := GetIndexPageCacheKey(resolved)
	if err := v.Populate(ctx, key, body); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to populate page cache...")
	}
	return body, nil
}

// Expire drops every entry whose window has elapsed and reports how many were dropped.
func (v *PageCache) Expire(ctx context.Context) int {
	now := v.now()

	v.mu.Lock()
	var expired []string
	for key, expiresAt := range v.keys {
		if !now.Before(expiresAt) {
			expired = append(expired, key)
		}
	}
	v.mu.Unlock()

	for _, key := range expired {
		v.forget(ctx, key)
	}
	if len(expired) > 0 {
		log.Debug().Int("count", len(expired)).Msg("Expired cached pages.")
	}
	return len(expired)
}

func (v *PageCache) Clear(ctx context.Context) error {
	v.mu.Lock()
	keys := v.keys
	v.keys = make(map[string]time.Time)
	v.mu.Unlock()

	if err := v.marshal.Invalidate(ctx, store.WithInvalidateTags([]string{indexPageTag})); err != nil {
		return fmt.Errorf("unable to clear page cache: %v", err)
	}
	for key := range keys {
		_ = v.marshal.Delete(ctx, key)
	}
	return nil
}

func (v *PageCache) forget(ctx context.Context, key string) {
	_ = v.marshal.Delete(ctx, key)

	v.mu.Lock()
	delete(v.keys, key)
	v.mu.Unlock()
}
