package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/api/responses"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

const envHeader = "X-BachelorHub-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

type apiHealth struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every dependency and reports 503 when any of them fails.
func HealthReady(cfg *config.Config, db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]pinger{"database": db, "redis": cache}
		for name, dep := range checks {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

// APIHealth answers the public liveness probe used by the frontend.
func APIHealth(now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, apiHealth{
			Status:    "OK",
			Message:   "BachelorHub API is running",
			Timestamp: now().UTC().Format(time.RFC3339Nano),
		})
	}
}
