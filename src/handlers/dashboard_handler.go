package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"spendwise-server/src/stats"
	"spendwise-server/src/store"
)

// GetDashboard recomputes the snapshot from the store on every request; it
// is never cached.
func GetDashboard(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenses, err := st.ListExpenses(r.Context(), userID, "")
		if err != nil {
			log.Printf("ERROR: Failed to load expenses for dashboard, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to load dashboard")
			return
		}

		writeJSON(w, http.StatusOK, stats.BuildSnapshot(expenses, time.Now()))
	}
}
