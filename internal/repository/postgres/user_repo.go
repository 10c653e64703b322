package postgres

import (
	"context"
	"errors"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type UserRepo struct {
	db *pgxpool.Pool
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return "", errors.New("user email and password hash are required")
	}

	user.ID = uuid.NewString()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", repository.ErrDuplicate
		}
		return "", err
	}
	return user.ID, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

// getBy looks a user up by a fixed column name; column is never user input.
func (r *UserRepo) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE `+column+` = $1;`,
		value,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
