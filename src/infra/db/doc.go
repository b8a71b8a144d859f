// Package db provides database connection management and SQL helpers.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Optional SQL statement tracing through the application logger
//   - Positional-placeholder query building with AND-joined predicates (QueryBuilder)
//   - Embedded schema migrations
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
package db
