package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RetrievalCache memoizes knowledge base search results per normalized
// query. The knowledge base never changes after startup, so cached entries
// can only go stale by TTL, never by content.
type RetrievalCache struct {
	cache *cache.Cache
}

func NewRetrievalCache() *RetrievalCache {
	// Short default expiration; retrieval is cheap, the cache only absorbs
	// bursts of identical queries.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &RetrievalCache{
		cache: c,
	}
}

func (r *RetrievalCache) Save(key string, results interface{}) {
	r.cache.Set(key, results, cache.DefaultExpiration)
}

func (r *RetrievalCache) Get(key string) (interface{}, bool) {
	return r.cache.Get(key)
}

func (r *RetrievalCache) Delete(key string) {
	r.cache.Delete(key)
}
