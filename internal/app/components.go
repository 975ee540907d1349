package app

import (
	"sync"
	"time"

	"log-baseline/internal/credentials"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/platforms"
	"log-baseline/internal/shared/caches"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/ratelimits"
	"log-baseline/internal/stores"
)

const (
	cacheTypeMemory = "memory"
	cacheTypeRedis  = "redis"
)

func newCountCache(cfg configs.CacheConfig) (caches.CountCache, error) {
	switch cfg.Type {
	case cacheTypeMemory:
		return caches.NewMemoryCountCache(), nil
	case cacheTypeRedis:
		return caches.NewRedisCountCache(cfg.RedisURL, time.Duration(cfg.TTLHours)*time.Hour)
	default:
		return caches.NewNopCountCache(), nil
	}
}

func newHistoryStore(cfg configs.HistoryConfig) (stores.HistoryStore, error) {
	if !cfg.Enabled {
		return stores.NewNopHistoryStore(), nil
	}
	return stores.NewSQLiteHistoryStore(cfg.Path)
}

// newClientFactory binds a Datadog client to each environment. Each environment keeps one
// rate limiter for the life of the process.
func newClientFactory(cfg configs.PlatformConfig) pipelines.ClientFactory {
	var (
		mu       sync.Mutex
		limiters = make(map[string]ratelimits.Limiter)
	)
	limiterFor := func(env string) ratelimits.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[env]
		if !ok {
			l = ratelimits.New(cfg.RequestsPerSecond, cfg.Burst)
			limiters[env] = l
		}
		return l
	}

	return func(env configs.EnvironmentConfig, creds *credentials.Credentials) platforms.Client {
		opts := []platforms.Option{
			platforms.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
			platforms.WithLimiter(limiterFor(env.Name)),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, platforms.WithBaseURL(cfg.BaseURL))
		}
		return platforms.NewDatadogClient(env.SiteOrDefault(cfg.Site), *creds, opts...)
	}
}
