package api

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Records int    `json:"records"`
	Rows    int    `json:"rows"`
}

// HandleHealth handles GET requests to the health check endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	response := HealthResponse{
		Status:  "healthy",
		Message: "go-records is running",
		Records: h.store.Len(),
		Rows:    h.view.RowCount(),
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}
