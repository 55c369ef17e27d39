package handler

import "net/http"

// HandleHealth responds with a 200 OK and a static status body.
// GET /api/health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
