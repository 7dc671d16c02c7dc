package server

import "net/http"

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
