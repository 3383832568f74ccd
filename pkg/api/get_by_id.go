package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// HandleGetById handles GET requests to retrieve a specific record by ID
func (h *Handler) HandleGetById(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(mux.Vars(r)["id"])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: handleGetById called for record %d", id)

	h.mu.Lock()
	record, err := h.store.Get(id)
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Record %d not found: %v", id, err)
		WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func parseRecordID(raw string) (domain.RecordID, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return domain.RecordID(n), nil
}
