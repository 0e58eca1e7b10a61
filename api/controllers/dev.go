package controllers

import (
	"net/http"

	"github.com/martinvlcek/shoplist-backend/api/responses"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
)

// Resettable is implemented by stores that can restore their seed dataset.
type Resettable interface {
	Reset()
}

// ResetStore restores the seed dataset. Mounted in dev only, for tests and
// local frontend work.
func ResetStore(store Resettable, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Reset()
		if logg != nil {
			logg.Info(r.Context(), "mock store reset to seed data")
		}
		responses.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
