package api

import (
	"encoding/json"
	"net/http"

	"github.com/vikasavnish/marketpulse/internal/store"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler responds to health check requests with collection sizes
func HealthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"version": Version,
			"store":   st.Stats(),
		})
	}
}
