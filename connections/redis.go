package connections

import (
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
)

var (
	redisPool     *redis.Pool
	redisPoolOnce sync.Once
	redisAddr     = "localhost:6379"
)

// Redis returns a connection from the Redis pool. Callers must Close it.
func Redis() redis.Conn {
	redisPoolOnce.Do(func() {
		addr := redisAddr

		redisPool = &redis.Pool{
			MaxIdle:     10,
			IdleTimeout: 240 * time.Second,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", addr)
			},
			TestOnBorrow: func(c redis.Conn, t time.Time) error {
				if time.Since(t) < time.Minute {
					return nil
				}
				_, err := c.Do("PING")
				return err
			},
		}
	})
	return redisPool.Get()
}

// SetRedisAddr points the pool at a different Redis instance. It must be
// called before the first Redis() call; main wires it from config and
// tests use it with miniredis.
func SetRedisAddr(addr string) {
	redisAddr = addr
}

// CloseRedis closes the Redis pool
func CloseRedis() {
	if redisPool != nil {
		redisPool.Close()
	}
}
