package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/martinvlcek/shoplist-backend/api/responses"
	"github.com/martinvlcek/shoplist-backend/pkg/config"
	pkgerrors "github.com/martinvlcek/shoplist-backend/pkg/errors"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
)

// Pinger is the readiness surface of optional dependencies.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady pings the wired dependencies; nil pingers are skipped so the
// memory-store deployment stays dependency-free.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency not ready"))
				return
			}
		}
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
