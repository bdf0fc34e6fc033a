package web

import (
	"github.com/gofiber/fiber/v2"
	memoryStorage "github.com/gofiber/storage/memory/v2"
	redisStorage "github.com/gofiber/storage/redis/v2"

	"github.com/Mictilt/qrsvg/internal/config"
	"github.com/Mictilt/qrsvg/internal/logging"
)

// NewStorage returns Redis storage when cache.redis_host is set and
// reachable, memory storage otherwise. Sessions and rendered documents share it.
func NewStorage(cfg config.Config) fiber.Storage {
	if cfg.Cache.RedisHost == "" {
		logging.Info("Using memory storage")
		return memoryStorage.New()
	}

	if store := newRedisStorage(cfg); store != nil {
		return store
	}
	return memoryStorage.New()
}

// newRedisStorage returns nil when the first ping fails.
func newRedisStorage(cfg config.Config) (store fiber.Storage) {
	// redis storage panics when the first ping fails
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Redis storage init panicked, falling back to memory", "panic", r)
			store = nil
		}
	}()

	store = redisStorage.New(redisStorage.Config{
		Addrs:    []string{cfg.Cache.RedisHost},
		Database: cfg.Cache.RedisDB,
	})
	logging.Info("Using Redis storage", "addr", cfg.Cache.RedisHost, "db", cfg.Cache.RedisDB)
	return store
}
