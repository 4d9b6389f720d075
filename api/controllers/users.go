package controllers

import (
	"net/http"

	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/api/responses"
	"github.com/angelmondragon/bachelorhub-backend/api/validators"
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

func caller(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (authz.Identity, bool) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity.IsZero() {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No token, authorization denied"))
		return identity, false
	}
	return identity, true
}

func UserProfile(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := caller(w, r, logg)
		if !ok {
			return
		}

		profile, err := svc.Profile(r.Context(), identity.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// UserUpdateProfile edits name, email and phone of the caller's account.
func UserUpdateProfile(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := caller(w, r, logg)
		if !ok {
			return
		}

		var body users.UpdateProfileInput
		if err := validators.DecodeInput(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), identity.ID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "Profile updated successfully", profile)
	}
}

// UserDeactivate soft-deletes the caller's account and ends the current session.
func UserDeactivate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := caller(w, r, logg)
		if !ok {
			return
		}

		if err := svc.Deactivate(r.Context(), identity.ID, middleware.AccessIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "Account deactivated successfully", nil)
	}
}

func UserStats(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := caller(w, r, logg)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), identity.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
