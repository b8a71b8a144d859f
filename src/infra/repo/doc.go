// Package repo contains the PostgreSQL implementation of the repository ports.
//
// PostgresRepository implements ports.ListingRepository. It receives its
// connection (a pool in production, a mock in tests) via constructor injection
// and runs exactly one statement per operation: no transactions, no retries.
//
// Errors are translated into domain errors before they leave the package:
//   - pgx.ErrNoRows on single-row lookups -> domain.ErrNotFound
//   - unique violations -> domain.ErrConflict
//   - not-null, foreign-key and check violations -> domain.ErrInvalidInput
//   - anything else -> *domain.QueryFailedError (logged)
package repo
