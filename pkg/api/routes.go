package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
	router.HandleFunc("/schema", h.HandleGetSchema).Methods("GET")

	// Record operations (storage order)
	router.HandleFunc("/records", h.HandleFindAll).Methods("GET")
	router.HandleFunc("/records", h.HandleInsert).Methods("POST")
	router.HandleFunc("/records/{id}", h.HandleGetById).Methods("GET")
	router.HandleFunc("/records/{id}", h.HandleUpdateById).Methods("PATCH")
	router.HandleFunc("/records/{id}", h.HandleDeleteById).Methods("DELETE")

	// View operations (presentation order)
	router.HandleFunc("/view", h.HandleGetView).Methods("GET")
	router.HandleFunc("/view/rows/{row}", h.HandleGetRow).Methods("GET")
	router.HandleFunc("/view/records/{id}/row", h.HandleRowOf).Methods("GET")
	router.HandleFunc("/view/filter", h.HandleSetFilter).Methods("PUT")
	router.HandleFunc("/view/sort", h.HandleSetSort).Methods("PUT")
	router.HandleFunc("/view/events", h.HandleGetEvents).Methods("GET")
}
