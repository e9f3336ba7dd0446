package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type mockVerifier struct {
	identity Identity
	err      error
}

func (m *mockVerifier) Verify(_ context.Context, _ string) (Identity, error) {
	return m.identity, m.err
}

type mockUserRepo struct {
	lastUID   string
	lastEmail string
	user      User
	err       error
	calls     int
}

func (m *mockUserRepo) GetOrCreate(_ context.Context, uid, email string) (User, error) {
	m.calls++
	m.lastUID = uid
	m.lastEmail = email
	return m.user, m.err
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &mockUserRepo{
		user: User{UID: "user-1", Email: "user@example.com", XRPLAddress: pendingAddress, Balance: decimal.Zero, Currency: defaultCurrency},
	}
	svc := NewService(&mockVerifier{identity: Identity{UID: "user-1", Email: "user@example.com"}}, repo)

	u, err := svc.Authenticate(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.UID != "user-1" {
		t.Errorf("uid = %q, want user-1", u.UID)
	}
	if repo.lastUID != "user-1" || repo.lastEmail != "user@example.com" {
		t.Errorf("repo called with %q/%q, want user-1/user@example.com", repo.lastUID, repo.lastEmail)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewService(&mockVerifier{err: ErrInvalidToken}, repo)

	_, err := svc.Authenticate(context.Background(), "bad")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
	if repo.calls != 0 {
		t.Errorf("repo calls = %d, want 0 when verification fails", repo.calls)
	}
}

func TestAuthenticateRepositoryFailure(t *testing.T) {
	repo := &mockUserRepo{err: errors.New("db down")}
	svc := NewService(&mockVerifier{identity: Identity{UID: "user-1"}}, repo)

	if _, err := svc.Authenticate(context.Background(), "token"); err == nil {
		t.Fatal("expected error when repository fails")
	}
}
