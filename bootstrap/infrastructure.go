package bootstrap

import (
	"context"

	"chatbot_backend/config"
	"chatbot_backend/dialogue"
	"chatbot_backend/pkg/logging"
	"chatbot_backend/platform/cache"
	"chatbot_backend/platform/database"
	"chatbot_backend/platform/events"
	"chatbot_backend/platform/redis"
	"chatbot_backend/platform/storage"
)

type Infrastructure struct {
	DB             *database.DB
	Redis          *redis.Service
	Cache          cache.CacheService
	EventPublisher *events.ContactEventPublisher
	Graph          *dialogue.Graph
}

func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{}

	// database
	db, err := database.Init(cfg)
	if err != nil {
		return nil, err
	}
	infra.DB = db
	if err := infra.DB.AutoMigrate(); err != nil {
		return nil, err
	}

	// redis is optional: without it the cache runs L1-only and the
	// live contact feed stays off.
	if cfg.RedisURL != "" {
		redisService, err := redis.InitRedis(cfg.RedisURL)
		if err != nil {
			logging.Logger.Error("fail Initializing Redis", "error", err)
			return nil, err
		}
		infra.Redis = redisService
		infra.EventPublisher = events.NewContactEventPublisher(redisService.Rdb)
	} else {
		logging.Logger.Warn("REDIS_URL not set, running without redis")
	}

	// cache
	l1CacheService := cache.InitL1Cache()
	infra.Cache = cache.NewCacheService(l1CacheService, infra.Redis)

	// dialogue graph: a missing or broken schema degrades the dialogue
	// endpoints, it never stops the process.
	infra.Graph = loadGraph(cfg)

	return infra, nil
}

func loadGraph(cfg *config.Config) *dialogue.Graph {
	var graph *dialogue.Graph
	var err error

	switch cfg.SchemaSource {
	case "bucket":
		graph, err = loadGraphFromBucket(cfg)
	default:
		graph, err = dialogue.Load(cfg.SchemaPath)
	}
	if err != nil {
		logging.Logger.Error("dialogue schema unavailable, dialogue endpoints will return 500",
			"source", cfg.SchemaSource, "error", err)
		return dialogue.Empty()
	}
	logging.Logger.Info("dialogue schema loaded", "questions", graph.Len())
	return graph
}

func loadGraphFromBucket(cfg *config.Config) (*dialogue.Graph, error) {
	storageService, err := storage.InitStorageService(cfg)
	if err != nil {
		return dialogue.Empty(), err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()
	data, err := storageService.FetchObject(ctx, cfg.SchemaObjectKey)
	if err != nil {
		return dialogue.Empty(), err
	}
	return dialogue.Parse(data)
}

func (infra *Infrastructure) Shutdown() error {
	if err := infra.DB.Close(); err != nil {
		logging.Logger.Error("fail closing database", "error", err)
		return err
	}
	if infra.Redis != nil {
		if err := infra.Redis.Close(); err != nil {
			logging.Logger.Error("fail closing redis", "error", err)
			return err
		}
	}
	return nil
}
