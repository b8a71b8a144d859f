package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"lightbnb/src/core/domain"
)

const userColumns = `id, name, email, password`

func (r *PostgresRepository) GetUserWithEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.queryUser(ctx, "GetUserWithEmail", q, domain.NormalizeEmail(email))
}

func (r *PostgresRepository) GetUserWithID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryUser(ctx, "GetUserWithID", q, id)
}

// AddUser inserts user and returns the stored row. Email uniqueness is left
// to the users_email_key constraint.
func (r *PostgresRepository) AddUser(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	const q = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING ` + userColumns
	user = user.Normalized()

	var u domain.User
	err := r.db.QueryRow(ctx, q, user.Name, user.Email, user.Password).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, r.translateError(ctx, "AddUser", err)
	}
	return &u, nil
}

func (r *PostgresRepository) queryUser(ctx context.Context, op, q string, arg any) (*domain.User, error) {
	var u domain.User
	if err := r.db.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, r.translateError(ctx, op, err)
	}
	return &u, nil
}
