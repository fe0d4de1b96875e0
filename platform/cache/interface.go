package cache

import "time"

// CacheService layers the in-process L1 over the shared redis L2.
type CacheService interface {
	GetCache(key string) (interface{}, bool)
	SetCache(key string, value interface{}, expiration time.Duration) error
	DelCache(key string) error
}
