package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristrettoCache "github.com/eko/gocache/store/ristretto/v4"
	"github.com/spf13/viper"
)

const DefaultIndexPageWindow = 20 * time.Second

var (
	S store.StoreInterface

	ristr *ristretto.Cache
)

func NewStore() error {
	var err error
	ristr, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristrettoCache.NewRistretto(ristr)

	return nil
}

// NewIndexPageCache builds the index listing cache on top of S.
func NewIndexPageCache() *PageCache {
	window := viper.GetDuration("cache.index_ttl")
	if window <= 0 {
		window = DefaultIndexPageWindow
	}
	return NewPageCache(gocache.New[any](S), window, WithFlush(ristr.Wait))
}
