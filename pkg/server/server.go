package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/go-records/pkg/api"
	"github.com/adfharrison1/go-records/pkg/domain"
	"github.com/adfharrison1/go-records/pkg/snapshot"
	"github.com/adfharrison1/go-records/pkg/storage"
	"github.com/adfharrison1/go-records/pkg/view"
)

// Server holds the record store, the view the API presents and the router
type Server struct {
	router  *mux.Router
	store   *storage.RecordStore
	view    *view.ViewProjection
	handler *api.Handler

	// Snapshot files that failed to load are never overwritten
	unreadable map[string]bool
}

// NewServer creates a new instance of Server.
func NewServer(storeOptions ...storage.StoreOption) *Server {
	store := storage.NewRecordStore(storeOptions...)
	projection := view.NewViewProjection(store)

	s := &Server{
		router:  mux.NewRouter(),
		store:   store,
		view:    projection,
		handler: api.NewHandler(store, projection),

		unreadable: make(map[string]bool),
	}
	s.handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// InitDB restores records from a snapshot file and returns how many were
// restored. A missing file restores nothing. A file that cannot be restored
// in full leaves the store untouched, and SaveDB will refuse to overwrite it.
func (s *Server) InitDB(filename string) (int, error) {
	var restored int
	err := s.handler.WithLock(func() error {
		var err error
		restored, err = snapshot.Load(filename, s.store)
		return err
	})
	if err != nil {
		s.unreadable[filename] = true
		log.Printf("ERROR: Could not load records from file %s: %v", filename, err)
		return 0, err
	}
	log.Printf("INFO: Loaded %d records from file %s", restored, filename)
	return restored, nil
}

// Seed inserts seed records, typically when no snapshot was restored
func (s *Server) Seed(records []domain.Fields) {
	err := s.handler.WithLock(func() error {
		_, err := snapshot.Seed(s.store, records)
		return err
	})
	if err != nil {
		log.Printf("ERROR: Could not seed records: %v", err)
	} else {
		log.Printf("INFO: Seeded %d records", len(records))
	}
}

// SaveDB writes a snapshot of the store to file
func (s *Server) SaveDB(filename string) error {
	if s.unreadable[filename] {
		err := fmt.Errorf("refusing to overwrite %s: it could not be loaded at startup", filename)
		log.Printf("ERROR: %v", err)
		return err
	}

	err := s.handler.WithLock(func() error {
		return snapshot.Save(filename, s.store)
	})
	if err != nil {
		log.Printf("ERROR: Could not save records to file %s: %v", filename, err)
		return err
	}
	log.Printf("INFO: Saved records to file %s successfully", filename)
	return nil
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
