package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/storage"
	"github.com/adfharrison1/go-records/pkg/view"
)

// FilterRequest describes the view's predicate. Text matches any field
// case-insensitively; Match requires exact field values. Both empty clears
// the filter.
type FilterRequest struct {
	Text  string                 `json:"text"`
	Match map[string]interface{} `json:"match,omitempty"`
}

// ViewStateResponse reports the view size after a filter or sort change
type ViewStateResponse struct {
	Rows int `json:"rows"`
}

// HandleSetFilter handles PUT requests replacing the view's filter
func (h *Handler) HandleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Printf("INFO: handleSetFilter called with text %q match %v", req.Text, req.Match)

	schema := h.store.Schema()
	for field := range req.Match {
		if _, ok := schema.Field(field); !ok && field != "id" {
			WriteDomainError(w, domain.NewValidationError(field, "unknown field"))
			return
		}
	}

	h.mu.Lock()
	h.view.SetFilter(buildPredicate(req))
	rows := h.view.RowCount()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, ViewStateResponse{Rows: rows})
}

func buildPredicate(req FilterRequest) domain.Predicate {
	text := view.ContainsText(req.Text)
	if len(req.Match) == 0 {
		return text
	}
	match := func(r domain.Record) bool {
		return storage.MatchesFilter(r, req.Match)
	}
	if text == nil {
		return match
	}
	return view.And(text, match)
}
