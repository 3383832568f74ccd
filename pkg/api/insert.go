package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// InsertResponse reports the id minted for a new record
type InsertResponse struct {
	ID domain.RecordID `json:"id"`
}

// HandleInsert handles POST requests to insert a record
func (h *Handler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleInsert called")

	var fields domain.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.mu.Lock()
	id, err := h.store.Insert(fields)
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Insert failed: %v", err)
		WriteDomainError(w, err)
		return
	}

	log.Printf("INFO: Inserted record %d", id)
	writeJSON(w, http.StatusCreated, InsertResponse{ID: id})
}
