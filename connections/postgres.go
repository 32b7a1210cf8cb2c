package connections

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pgPool       *pgxpool.Pool
	pgPoolOnce   sync.Once
	pgConnString string
)

// SetPostgresURL points the pool at a PostgreSQL instance. It must be
// called before the first Postgres() call; main wires it from config.
func SetPostgresURL(url string) {
	pgConnString = url
}

// Postgres returns the PostgreSQL connection pool
func Postgres() *pgxpool.Pool {
	pgPoolOnce.Do(func() {
		if pgConnString == "" {
			panic("connections: Postgres URL not configured")
		}

		var err error
		pgPool, err = pgxpool.New(context.Background(), pgConnString)
		if err != nil {
			panic(fmt.Sprintf("Unable to connect to PostgreSQL: %v", err))
		}
	})
	return pgPool
}

// ClosePostgres closes the PostgreSQL connection pool
func ClosePostgres() {
	if pgPool != nil {
		pgPool.Close()
	}
}
