package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis opens the Redis client used for the storefront catalog cache
// and the admin rate limiter. Both are optional: without REDIS_URL the API
// runs cache-less and every read goes straight to the store.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, running without cache")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Fatalf("❌ failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis:", res)
}
