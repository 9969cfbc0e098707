package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/orlcoffee/coffee-shop-finder/internal/model"
	"github.com/orlcoffee/coffee-shop-finder/internal/utils"
)

// AdminRepo loads and authenticates management users. Admin rows are only
// ever written by the one-time bootstrap endpoint.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo constructs an AdminRepo with the provided DB handle.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// GetByEmail fetches an admin by normalized email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a model.Admin
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password FROM admins WHERE email = ? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Authenticate verifies an email/password pair and returns the matching
// admin. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials so the response cannot reveal which was wrong.
func (r *AdminRepo) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	a, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.VerifyPassword(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// Create inserts an admin with a bcrypt-hashed password and returns its ID.
// Used only by the local-environment bootstrap endpoint.
func (r *AdminRepo) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO admins (email, password) VALUES (?, ?)", email, hash)
	if err != nil {
		// MySQL duplicate-key errors carry code 1062.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
