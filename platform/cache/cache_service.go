package cache

import (
	"time"

	"chatbot_backend/pkg/logging"
	"chatbot_backend/platform/redis"
)

type Service struct {
	l1 *L1CacheService
	l2 *redis.Service
}

// NewCacheService builds the layered cache. l2 may be nil when redis
// is not configured; the cache then runs L1-only.
func NewCacheService(l1 *L1CacheService, l2 *redis.Service) CacheService {
	return &Service{l1: l1, l2: l2}
}

func (cs *Service) GetCache(key string) (interface{}, bool) {
	if data, ok := cs.l1.Get(key); ok {
		return data, ok
	}
	if cs.l2 == nil {
		return nil, false
	}
	return cs.l2.GetCache(key)
}

func (cs *Service) SetCache(key string, value interface{}, expiration time.Duration) error {
	if cs.l2 != nil {
		if err := cs.l2.SetCache(key, value, expiration); err != nil {
			logging.Logger.Error("l2 cache set failed", "key", key, "error", err)
			return err
		}
	}
	cs.l1.Set(key, value, time.Duration(float64(expiration)*0.3))
	return nil
}

func (cs *Service) DelCache(key string) error {
	cs.l1.Del(key)
	if cs.l2 == nil {
		return nil
	}
	if err := cs.l2.DelCache(key); err != nil {
		logging.Logger.Error("l2 cache del failed", "key", key, "error", err)
		return err
	}
	return nil
}
