package property

import (
	"encoding/json"

	log "github.com/Ptt-Alertor/logrus"
	"github.com/gomodule/redigo/redis"

	"github.com/Haven-Estates/haven-api/connections"
)

// ListCacheKey holds the serialized public listing in Redis.
const ListCacheKey = "cache:properties"

const listCacheTTL = 600 // seconds

// CachedList returns the public listing, served from Redis when warm.
// Cache trouble falls back to Postgres; the public page must not depend
// on Redis being up.
func CachedList(repo Repository) ([]*Property, error) {
	conn := connections.Redis()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", ListCacheKey))
	if err == nil {
		var properties []*Property
		if err := json.Unmarshal(data, &properties); err == nil {
			return properties, nil
		}
	}

	properties, err := repo.List()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(properties); err == nil {
		if _, err := conn.Do("SETEX", ListCacheKey, listCacheTTL, data); err != nil {
			log.WithError(err).Error("cache property listing")
		}
	}

	return properties, nil
}

// InvalidateListCache drops the cached listing after a mutation.
func InvalidateListCache() {
	conn := connections.Redis()
	defer conn.Close()

	if _, err := conn.Do("DEL", ListCacheKey); err != nil {
		log.WithError(err).Error("invalidate property listing cache")
	}
}

// WarmListCache refreshes the cached listing from Postgres.
func WarmListCache(repo Repository) error {
	properties, err := repo.List()
	if err != nil {
		return err
	}

	data, err := json.Marshal(properties)
	if err != nil {
		return err
	}

	conn := connections.Redis()
	defer conn.Close()

	_, err = conn.Do("SETEX", ListCacheKey, listCacheTTL, data)
	return err
}
