package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"lightbnb/src/core/domain"
	"lightbnb/src/core/ports"
	"lightbnb/src/infra/db"
	"lightbnb/src/infra/logger"
)

// SQLSTATE codes mapped to domain errors.
const (
	notNullViolation    = "23502"
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"
)

var _ ports.ListingRepository = (*PostgresRepository)(nil)

// PostgresRepository implements ListingRepository using pgx.
type PostgresRepository struct {
	db  db.Querier
	log *zerolog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *zerolog.Logger) *PostgresRepository {
	return newRepository(pg.Pool, log)
}

func newRepository(conn db.Querier, log *zerolog.Logger) *PostgresRepository {
	return &PostgresRepository{db: conn, log: log}
}

// logFor prefers the request logger on ctx so repository events carry the
// request id.
func (r *PostgresRepository) logFor(ctx context.Context) *zerolog.Logger {
	return logger.WithComponent(logger.FromContext(ctx, r.log), "repo")
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// translateError maps a driver error from op to a domain error.
// Constraint violations become conflict or validation errors; anything
// else is logged and returned as a QueryFailedError.
func (r *PostgresRepository) translateError(ctx context.Context, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return domain.NewConflictError(constraintColumn(pgErr, "_key") + " already exists")
		case foreignKeyViolation:
			return domain.NewValidationError(constraintColumn(pgErr, "_fkey"), "referenced record does not exist")
		case notNullViolation:
			return domain.NewValidationError(pgErr.ColumnName, "is required")
		case checkViolation:
			return domain.NewValidationError(constraintColumn(pgErr, "_check"), "does not meet required conditions")
		}
	}

	r.logFor(ctx).Error().Err(err).Str("op", op).Msg("query failed")
	return domain.NewQueryFailedError(op, err)
}

// constraintColumn recovers the column from Postgres' default constraint
// naming (<table>_<column>_<suffix>), falling back to the reported column.
func constraintColumn(pgErr *pgconn.PgError, suffix string) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := pgErr.ConstraintName
	if name == "" || !strings.HasSuffix(name, suffix) {
		return "record"
	}
	name = strings.TrimSuffix(name, suffix)
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return name
}
