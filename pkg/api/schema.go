package api

import (
	"net/http"
)

// HandleGetSchema returns the ordered field schema used to build edit forms
func (h *Handler) HandleGetSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Schema())
}
