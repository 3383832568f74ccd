package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// RowOfResponse reports where a record currently sits in the view
type RowOfResponse struct {
	ID  domain.RecordID `json:"id"`
	Row int             `json:"row"`
}

// HandleGetView handles GET requests for a page of view rows. Supports
// offset/limit and after-cursor paging.
func (h *Handler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleGetView called")

	options, err := parsePaginationOptions(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	page, err := h.view.Page(options)
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Paging view failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: Returned %d of %d view rows", len(page.Rows), page.Total)
	writeJSON(w, http.StatusOK, page)
}

// HandleGetRow handles GET requests for the record at a presentation row
func (h *Handler) HandleGetRow(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["row"]
	row, err := strconv.Atoi(raw)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid row "+strconv.Quote(raw))
		return
	}

	h.mu.Lock()
	record, err := h.view.RecordAt(row)
	h.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: Row %d lookup failed: %v", row, err)
		WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.Row{Row: row, Record: record})
}

// HandleRowOf handles GET requests for the presentation row of a record
func (h *Handler) HandleRowOf(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(mux.Vars(r)["id"])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	row, ok := h.view.RowOf(id)
	h.mu.Unlock()
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "record "+strconv.FormatUint(uint64(id), 10)+" is not in the view")
		return
	}

	writeJSON(w, http.StatusOK, RowOfResponse{ID: id, Row: row})
}

func parsePaginationOptions(r *http.Request) (*domain.PaginationOptions, error) {
	options := domain.DefaultPaginationOptions()
	query := r.URL.Query()

	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		options.Limit = n
	}
	if v := query.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		options.Offset = n
	}
	options.After = query.Get("after")

	return options, options.Validate()
}
