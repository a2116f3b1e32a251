package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) marketplace.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, email, username, password, fullName string) (*repository.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &repository.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		Password:  string(hashedPassword),
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO users (id, email, username, password, full_name, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, user.ID, user.Email, user.Username, user.Password, user.FullName, user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, repository.ErrInvalidCredentials
	}
	return &user, nil
}

func (r *UserRepo) IncrementLoanCountersTx(ctx context.Context, tx db.Tx, lenderID, borrowerID uuid.UUID) error {
	if _, err := tx.Exec(ctx,
		"UPDATE users SET total_lends = total_lends + 1 WHERE id = $1", lenderID); err != nil {
		return err
	}
	_, err := tx.Exec(ctx,
		"UPDATE users SET total_borrows = total_borrows + 1 WHERE id = $1", borrowerID)
	return err
}
