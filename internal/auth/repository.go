package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Profile XRPL addresses are generated lazily; new users get this placeholder
// until wallet provisioning exists.
const pendingAddress = "rPendingGeneration..."

const defaultCurrency = "RLUSD"

// User is a stored user profile.
type User struct {
	UID         string          `json:"uid"`
	Email       string          `json:"email"`
	XRPLAddress string          `json:"xrpl_address"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// UserRepository defines persistent storage for user profiles.
type UserRepository interface {
	GetOrCreate(ctx context.Context, uid, email string) (User, error)
}

// PgUserRepository implements UserRepository with PostgreSQL.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository creates a new PostgreSQL user repository.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// GetOrCreate returns the existing profile for uid, inserting a default one
// first if none exists. The no-op DO UPDATE makes RETURNING yield the
// existing row on conflict.
func (r *PgUserRepository) GetOrCreate(ctx context.Context, uid, email string) (User, error) {
	var u User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (uid, email, xrpl_address, balance, currency)
		 VALUES ($1, $2, $3, 0, $4)
		 ON CONFLICT (uid) DO UPDATE SET uid = users.uid
		 RETURNING uid, email, xrpl_address, balance, currency, created_at`,
		uid, email, pendingAddress, defaultCurrency).
		Scan(&u.UID, &u.Email, &u.XRPLAddress, &u.Balance, &u.Currency, &u.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("getting or creating user %s: %w", uid, err)
	}
	return u, nil
}
