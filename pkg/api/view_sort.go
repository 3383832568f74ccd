package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/view"
)

// SortRequest selects the column the view is ordered by. An empty field
// restores insertion order.
type SortRequest struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// HandleSetSort handles PUT requests replacing the view's sort order
func (h *Handler) HandleSetSort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Printf("INFO: handleSetSort called with field %q descending %v", req.Field, req.Descending)

	var comparator domain.Comparator
	switch req.Field {
	case "":
	case "id":
		comparator = view.ByID(req.Descending)
	default:
		if _, ok := h.store.Schema().Field(req.Field); !ok {
			WriteDomainError(w, domain.NewValidationError(req.Field, "unknown field"))
			return
		}
		comparator = view.ByField(req.Field, req.Descending)
	}

	h.mu.Lock()
	h.view.SetSort(comparator)
	rows := h.view.RowCount()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, ViewStateResponse{Rows: rows})
}
