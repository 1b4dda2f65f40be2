package cache

import "time"

// LayeredBytesCache reads through a fast local cache backed by a shared one.
// Local hits skip the shared layer; shared hits are backfilled locally.
type LayeredBytesCache struct {
	local  BytesCache
	shared BytesCache
	// Local backfill TTL is capped so a shared eviction propagates quickly.
	localTTL time.Duration
}

func NewLayeredBytesCache(local, shared BytesCache, localTTL time.Duration) *LayeredBytesCache {
	return &LayeredBytesCache{local: local, shared: shared, localTTL: localTTL}
}

func (l *LayeredBytesCache) GetBytes(key string) ([]byte, bool, error) {
	if b, ok, err := l.local.GetBytes(key); err == nil && ok {
		return b, true, nil
	}
	b, ok, err := l.shared.GetBytes(key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = l.local.SetBytes(key, b, l.localTTL)
	return b, true, nil
}

func (l *LayeredBytesCache) SetBytes(key string, value []byte, ttl time.Duration) error {
	localTTL := ttl
	if l.localTTL > 0 && (localTTL <= 0 || localTTL > l.localTTL) {
		localTTL = l.localTTL
	}
	_ = l.local.SetBytes(key, value, localTTL)
	return l.shared.SetBytes(key, value, ttl)
}
