package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

const userColumns = `id, first_name, last_name, username, email, password_hash`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query :=
		`INSERT INTO users (first_name, last_name, username, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	created := *user
	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash).Scan(&created.ID)
	if err != nil {
		return nil, userWriteError(err)
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.findOne(ctx, query, username)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query :=
		`UPDATE users
		 SET first_name = $1, last_name = $2, username = $3, email = $4, password_hash = $5
		 WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash, user.ID)
	if err != nil {
		return userWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return u, nil
}

func userWriteError(err error) error {
	switch pgCode(err) {
	case codeUniqueViolation:
		return domain.ErrUserExists
	case codeStringTooLong:
		return fmt.Errorf("%w: field too long", domain.ErrValidation)
	}
	return fmt.Errorf("db error: %w", err)
}
