package wordlist

import (
	"math"
	"sync"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultCacheLists is how many lists a Cache keeps when none is given.
const DefaultCacheLists = 4

// Cache keeps recently loaded lists of a catalog in memory and evicts the
// least recently used one when full.
type Cache struct {
	catalog     *Catalog
	words       map[string][]string
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxLists    int
	mu          sync.Mutex
}

// NewCache creates a cache over catalog holding at most maxLists lists.
func NewCache(catalog *Catalog, maxLists int) *Cache {
	if maxLists <= 0 {
		maxLists = DefaultCacheLists
	}
	return &Cache{
		catalog:    catalog,
		words:      make(map[string][]string, maxLists),
		accessTime: make(map[string]int64, maxLists),
		maxLists:   maxLists,
	}
}

// Load resolves name and returns its words, reading the file only on a miss.
func (lc *Cache) Load(name string) ([]string, error) {
	resolved, err := lc.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if words, ok := lc.words[resolved]; ok {
		lc.hits++
		lc.markAccessed(resolved)
		return words, nil
	}

	path, err := lc.catalog.Path(resolved)
	if err != nil {
		return nil, err
	}
	words, err := Load(path)
	if err != nil {
		return nil, err
	}

	if len(lc.words) >= lc.maxLists {
		lc.evictLRU()
	}
	lc.words[resolved] = words
	lc.markAccessed(resolved)
	log.Debugf("Cached list %s (%s words)", resolved, utils.FormatWithCommas(len(words)))
	return words, nil
}

// Invalidate drops name so the next Load reads it from disk.
func (lc *Cache) Invalidate(name string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	delete(lc.words, name)
	delete(lc.accessTime, name)
}

// Stats reports cache usage.
func (lc *Cache) Stats() map[string]int {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return map[string]int{
		"cachedLists": len(lc.words),
		"maxLists":    lc.maxLists,
		"cacheHits":   int(lc.hits),
	}
}

func (lc *Cache) markAccessed(name string) {
	lc.accessCount++
	lc.accessTime[name] = lc.accessCount
}

func (lc *Cache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for name, t := range lc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = name
		}
	}

	if oldest != "" {
		delete(lc.words, oldest)
		delete(lc.accessTime, oldest)
		log.Debugf("Evicted list '%s' from cache", oldest)
	}
}
