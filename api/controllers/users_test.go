package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubUsers struct {
	profile     *users.UserDTO
	stats       *users.StatsDTO
	err         error
	update      users.UpdateProfileInput
	deactivated string
}

func (s *stubUsers) Profile(context.Context, uuid.UUID) (*users.UserDTO, error) {
	return s.profile, s.err
}

func (s *stubUsers) UpdateProfile(_ context.Context, _ uuid.UUID, in users.UpdateProfileInput) (*users.UserDTO, error) {
	s.update = in
	return s.profile, s.err
}

func (s *stubUsers) Deactivate(_ context.Context, _ uuid.UUID, accessID string) error {
	s.deactivated = accessID
	return s.err
}

func (s *stubUsers) Stats(context.Context, uuid.UUID) (*users.StatsDTO, error) {
	return s.stats, s.err
}

func authed(r *http.Request, accessID string) *http.Request {
	ctx := middleware.WithIdentity(r.Context(), authz.Identity{ID: uuid.New()})
	ctx = middleware.WithAccessID(ctx, accessID)
	return r.WithContext(ctx)
}

func TestUserProfileRequiresCaller(t *testing.T) {
	rec := httptest.NewRecorder()
	UserProfile(&stubUsers{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestUserUpdateProfileEmailInUse(t *testing.T) {
	svc := &stubUsers{err: pkgerrors.New(pkgerrors.CodeConflict, "Email is already in use by another account")}
	req := authed(httptest.NewRequest(http.MethodPut, "/api/user/profile", bytes.NewReader([]byte(`{"email":"taken@example.com"}`))), "jti")
	rec := httptest.NewRecorder()

	UserUpdateProfile(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Email is already in use by another account" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if svc.update.Email == nil || *svc.update.Email != "taken@example.com" {
		t.Fatalf("expected email decoded")
	}
}

func TestUserDeactivatePassesSession(t *testing.T) {
	svc := &stubUsers{}
	req := authed(httptest.NewRequest(http.MethodDelete, "/api/user/profile", nil), "jti-1")
	rec := httptest.NewRecorder()

	UserDeactivate(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.deactivated != "jti-1" {
		t.Fatalf("expected current session revoked, got %q", svc.deactivated)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Account deactivated successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestUserStats(t *testing.T) {
	svc := &stubUsers{stats: &users.StatsDTO{JoinedDate: time.Now(), AccountStatus: "Active"}}
	rec := httptest.NewRecorder()

	UserStats(svc, nil).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/user/stats", nil), "jti"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}
