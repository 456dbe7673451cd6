package crypto

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/jellydator/ttlcache/v3"
)

const (
	defaultCacheCapacity = 10_000
	defaultCacheTTL      = 10 * time.Minute
)

// CachingVerifier memoizes the results of another Verifier keyed by the full
// (address, message, signature) triple. It is safe for concurrent use.
type CachingVerifier struct {
	next  Verifier
	cache *ttlcache.Cache[chainhash.Hash, bool]
}

// NewCachingVerifier wraps next. A zero capacity or ttl selects the defaults.
func NewCachingVerifier(next Verifier, capacity uint64, ttl time.Duration) *CachingVerifier {
	if capacity == 0 {
		capacity = defaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachingVerifier{
		next: next,
		cache: ttlcache.New[chainhash.Hash, bool](
			ttlcache.WithCapacity[chainhash.Hash, bool](capacity),
			ttlcache.WithTTL[chainhash.Hash, bool](ttl),
		),
	}
}

// Verify implements Verifier.
func (v *CachingVerifier) Verify(address model.Address, message, signature []byte) bool {
	key := cacheKey(address, message, signature)
	if item := v.cache.Get(key); item != nil {
		return item.Value()
	}
	ok := v.next.Verify(address, message, signature)
	v.cache.Set(key, ok, ttlcache.DefaultTTL)
	return ok
}

// Stats returns cache hit and miss counters.
func (v *CachingVerifier) Stats() (hits, misses uint64) {
	m := v.cache.Metrics()
	return m.Hits, m.Misses
}

// Len returns the number of cached results.
func (v *CachingVerifier) Len() int {
	return v.cache.Len()
}

// address and message digest have fixed sizes, so appending the raw signature
// keeps the key unambiguous.
func cacheKey(address model.Address, message, signature []byte) chainhash.Hash {
	buf := make([]byte, 0, model.AddressSize+chainhash.HashSize+len(signature))
	buf = append(buf, address[:]...)
	buf = append(buf, chainhash.HashB(message)...)
	buf = append(buf, signature...)
	return chainhash.HashH(buf)
}
