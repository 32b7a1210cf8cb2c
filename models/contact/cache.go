package contact

import (
	"encoding/json"

	log "github.com/Ptt-Alertor/logrus"
	"github.com/gomodule/redigo/redis"

	"github.com/Haven-Estates/haven-api/connections"
)

// CacheKey holds the serialized contact record in Redis.
const CacheKey = "cache:contact"

const cacheTTL = 600 // seconds

// CachedGet returns the contact record, served from Redis when warm.
func CachedGet(repo Repository) (*Info, error) {
	conn := connections.Redis()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", CacheKey))
	if err == nil {
		var info Info
		if err := json.Unmarshal(data, &info); err == nil {
			return &info, nil
		}
	}

	info, err := repo.Get()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(info); err == nil {
		if _, err := conn.Do("SETEX", CacheKey, cacheTTL, data); err != nil {
			log.WithError(err).Error("cache contact info")
		}
	}

	return info, nil
}

// InvalidateCache drops the cached record after a mutation.
func InvalidateCache() {
	conn := connections.Redis()
	defer conn.Close()

	if _, err := conn.Do("DEL", CacheKey); err != nil {
		log.WithError(err).Error("invalidate contact cache")
	}
}

// WarmCache refreshes the cached record from Postgres. An unset record
// is not an error; there is simply nothing to cache yet.
func WarmCache(repo Repository) error {
	info, err := repo.Get()
	if err != nil {
		if err == ErrContactNotSet {
			return nil
		}
		return err
	}

	data, err := json.Marshal(info)
	if err != nil {
		return err
	}

	conn := connections.Redis()
	defer conn.Close()

	_, err = conn.Do("SETEX", CacheKey, cacheTTL, data)
	return err
}
