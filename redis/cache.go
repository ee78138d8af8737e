package redis

import (
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetCache retrieves a cached JSON value into dest. Returns false on a
// miss or when redis is unavailable so callers fall through to the DB.
func GetCache(key string, dest any) (bool, error) {
	if Client == nil {
		return false, nil
	}
	val, err := Client.Get(Ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetCache stores value as JSON under key with the given TTL.
func SetCache(key string, value any, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, key, b, ttl).Err()
}

// DeleteCache drops a cached key, used after writes that stale it.
func DeleteCache(key string) error {
	if Client == nil {
		return nil
	}
	return Client.Del(Ctx, key).Err()
}
