package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	getUserWithEmailQuery = `SELECT id, name, email, password FROM users WHERE email = $1`
	getUserWithIDQuery    = `SELECT id, name, email, password FROM users WHERE id = $1`
	addUserQuery          = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email, password`
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserWithEmail returns the user with the given email. The match is exact.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, getUserWithEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("users")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserWithID returns the user with the given id.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, getUserWithIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("users")
		}
		return nil, fmt.Errorf("failed to get user by id=%d: %w", id, err)
	}
	return &user, nil
}

// AddUser inserts a user and returns the stored row with its generated id.
func (r *UserRepository) AddUser(ctx context.Context, payload model.NewUser) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, addUserQuery, payload.Name, payload.Email, payload.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &user, nil
}
