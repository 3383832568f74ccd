package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// HandleUpdateById handles PATCH requests to update fields of a record
func (h *Handler) HandleUpdateById(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(mux.Vars(r)["id"])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: handleUpdateById called for record %d", id)

	var updates domain.Fields
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.mu.Lock()
	err = h.store.Update(id, updates)
	var record domain.Record
	if err == nil {
		record, err = h.store.Get(id)
	}
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Update failed for record %d: %v", id, err)
		WriteDomainError(w, err)
		return
	}

	log.Printf("INFO: Updated record %d", id)
	writeJSON(w, http.StatusOK, record)
}
