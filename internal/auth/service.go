package auth

import (
	"context"
	"fmt"
)

// Service verifies identity tokens and resolves the matching user profile,
// creating a default profile on first login.
type Service struct {
	verifier TokenVerifier
	users    UserRepository
}

// NewService creates a new auth service.
func NewService(verifier TokenVerifier, users UserRepository) *Service {
	return &Service{verifier: verifier, users: users}
}

// Authenticate verifies the token and returns the stored user profile.
func (s *Service) Authenticate(ctx context.Context, token string) (User, error) {
	id, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return User{}, err
	}

	u, err := s.users.GetOrCreate(ctx, id.UID, id.Email)
	if err != nil {
		return User{}, fmt.Errorf("resolving user profile: %w", err)
	}
	return u, nil
}
