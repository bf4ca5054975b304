package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/med-tracker/internal/middlewares"
)

// ext returns the transaction bound to the request context when present,
// otherwise the shared connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// collapse folds a multi-line query into a single line for logging
func collapse(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
