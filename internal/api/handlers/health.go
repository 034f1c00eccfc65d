package handlers

import (
	"net/http"
)

// Health reports liveness. It does not probe the directions or messaging providers.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
