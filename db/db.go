package db

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
)

const connectTimeout = 5 * time.Second

// Connect opens a go-pg connection pool and verifies it is usable.
// The pool is safe for concurrent chunk workers; a scan fails fast
// when the database is unreachable instead of camping on it.
func Connect(opts *pg.Options) (*pg.DB, error) {
	pgdb := pg.Connect(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := pgdb.Ping(ctx); err != nil {
		pgdb.Close()
		return nil, err
	}
	return pgdb, nil
}
