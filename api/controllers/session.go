package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/api/responses"
	"github.com/angelmondragon/bachelorhub-backend/api/validators"
	"github.com/angelmondragon/bachelorhub-backend/internal/auth"
	pkgAuth "github.com/angelmondragon/bachelorhub-backend/pkg/auth"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

type sessionRevoker interface {
	Revoke(ctx context.Context, accessID string) error
}

// sessionID reads the jti of the presented access token. Expired tokens are
// accepted so a client can refresh after the access token lapsed.
func sessionID(r *http.Request, cfg config.JWTConfig) (string, error) {
	token := middleware.BearerToken(r)
	if token == "" {
		return "", errors.New(errors.CodeUnauthorized, "No token, authorization denied")
	}

	claims, err := pkgAuth.ParseAccessTokenAllowExpired(cfg, token)
	if err != nil {
		return "", errors.Wrap(errors.CodeUnauthorized, err, "Token is not valid")
	}
	if claims.ID == "" {
		return "", errors.New(errors.CodeUnauthorized, "missing session id")
	}
	return claims.ID, nil
}

// AuthLogout revokes the refresh mapping tied to the presented access token.
func AuthLogout(manager sessionRevoker, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeInternal, "session manager unavailable"))
			return
		}

		accessID, err := sessionID(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := manager.Revoke(r.Context(), accessID); err != nil {
			responses.WriteError(r.Context(), logg, w, errors.Wrap(errors.CodeDependency, err, "revoke session"))
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Logged out successfully", nil)
	}
}

// AuthRefresh rotates the refresh token and issues a new access token.
func AuthRefresh(svc auth.Service, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, authUnavailable())
			return
		}

		var body auth.RefreshRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accessID, err := sessionID(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Refresh(r.Context(), accessID, body.RefreshToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(middleware.TokenHeader, result.AccessToken)
		responses.WriteSuccess(w, result)
	}
}
