package api

import (
	"log"
	"net/http"

	"github.com/adfharrison1/go-records/pkg/storage"
)

// HandleFindAll handles GET requests listing records in storage order, with
// optional field filters taken from the query string
func (h *Handler) HandleFindAll(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleFindAll called")

	// Parse query parameters to build filter
	filter := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = storage.ParseFilterValue(values[0]) // Take first value if multiple provided
		}
	}

	h.mu.Lock()
	records := h.store.FindAll(filter)
	h.mu.Unlock()

	if len(filter) == 0 {
		log.Printf("INFO: Found %d records (no filter)", len(records))
	} else {
		log.Printf("INFO: Found %d records with filter %v", len(records), filter)
	}

	writeJSON(w, http.StatusOK, records)
}
