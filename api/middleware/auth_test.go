package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/pkg/auth"
	"github.com/angelmondragon/bachelorhub-backend/pkg/auth/session"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/google/uuid"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testJWT, stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testJWT, stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	token, _ := mintTestToken(t, enums.RoleUser)

	for _, tt := range []struct {
		verifier stubSessionVerifier
		status   int
	}{
		{stubSessionVerifier{ok: false}, http.StatusUnauthorized},
		{stubSessionVerifier{err: errors.New("redis down")}, http.StatusServiceUnavailable},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		Auth(testJWT, tt.verifier, nil)(okHandler()).ServeHTTP(resp, req)
		if resp.Code != tt.status {
			t.Fatalf("expected %d got %d", tt.status, resp.Code)
		}
	}
}

func TestAuthAttachesIdentity(t *testing.T) {
	token, userID := mintTestToken(t, enums.RoleAdmin)

	var identity authz.Identity
	var accessID string
	handler := Auth(testJWT, stubSessionVerifier{ok: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity = IdentityFromContext(r.Context())
		accessID = AccessIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if identity.ID != userID || !identity.IsAdmin() || identity.Email != "owner@example.com" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if accessID == "" {
		t.Fatal("expected access id in context")
	}
}

func TestIdentityFromEmptyContext(t *testing.T) {
	if !IdentityFromContext(context.Background()).IsZero() {
		t.Fatal("expected zero identity")
	}
}

func mintTestToken(t *testing.T, role enums.Role) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	payload := auth.AccessTokenPayload{
		UserID: userID,
		Email:  "owner@example.com",
		Role:   role,
		JTI:    session.NewAccessID(),
	}
	token, err := auth.MintAccessToken(testJWT, time.Now(), payload)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token, userID
}

type stubSessionVerifier struct {
	ok  bool
	err error
}

func (s stubSessionVerifier) HasSession(ctx context.Context, accessID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.ok, nil
}
