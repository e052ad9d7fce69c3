package catalog_cache

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
)

// Redis-backed cache for storefront catalog reads. Admin reads never touch
// it: the admin panel always re-fetches from the store. Every catalog write
// invalidates the whole prefix, which is the "revalidate list/detail views"
// hook of the write path.

const (
	TTL    = 5 * time.Minute
	prefix = "catalog:"
)

func KeyCategories() string         { return prefix + "categories" }
func KeyCategory(id string) string  { return prefix + "category:" + id }
func KeyProducts(q string) string   { return prefix + "products:" + q }
func KeyProduct(slug string) string { return prefix + "product:" + slug }

// Get loads a cached value into dest. Returns false on miss, on any Redis
// error, or when no Redis client is configured.
func Get(key string, dest any) bool {
	if config.RedisClient == nil {
		return false
	}
	raw, err := config.RedisClient.Get(config.Ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[cache] failed to decode %s: %v", key, err)
		return false
	}
	return true
}

// Set stores a value under key with the cache TTL. Failures are logged and
// otherwise ignored; the cache is best-effort.
func Set(key string, value any) {
	if config.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] failed to encode %s: %v", key, err)
		return
	}
	if err := config.RedisClient.Set(config.Ctx, key, raw, TTL).Err(); err != nil {
		log.Printf("[cache] failed to store %s: %v", key, err)
	}
}

// Invalidate drops every cached catalog entry. Called on any category or
// product create/update/delete.
func Invalidate() {
	if config.RedisClient == nil {
		return
	}
	keys, err := config.RedisClient.Keys(config.Ctx, prefix+"*").Result()
	if err != nil {
		log.Printf("[cache] failed to list keys: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := config.RedisClient.Del(config.Ctx, keys...).Err(); err != nil {
		log.Printf("[cache] failed to invalidate: %v", err)
	}
}
