package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleDeleteById handles DELETE requests to remove a specific record by ID
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(mux.Vars(r)["id"])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: handleDeleteById called for record %d", id)

	h.mu.Lock()
	err = h.store.Remove(id)
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Delete failed for record %d: %v", id, err)
		WriteDomainError(w, err)
		return
	}

	log.Printf("INFO: Deleted record %d", id)
	w.WriteHeader(http.StatusNoContent)
}
