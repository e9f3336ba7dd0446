package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrInvalidToken indicates the identity provider rejected the token.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified result of an identity-provider token check.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// TokenVerifier validates an opaque bearer token with the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// HTTPVerifier verifies tokens against the identity provider's verification
// endpoint.
type HTTPVerifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier for the given identity provider base URL.
func NewHTTPVerifier(baseURL string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return Identity{}, fmt.Errorf("encoding verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/verify", bytes.NewReader(payload))
	if err != nil {
		return Identity{}, fmt.Errorf("creating verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("verifying token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Identity{}, fmt.Errorf("reading verification response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return Identity{}, fmt.Errorf("%w: HTTP %d", ErrInvalidToken, resp.StatusCode)
	default:
		return Identity{}, fmt.Errorf("identity provider returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var id Identity
	if err := json.Unmarshal(body, &id); err != nil {
		return Identity{}, fmt.Errorf("parsing verification response: %w", err)
	}
	if id.UID == "" {
		return Identity{}, fmt.Errorf("%w: response missing uid", ErrInvalidToken)
	}
	return id, nil
}
