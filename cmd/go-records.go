package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adfharrison1/go-records/pkg/server"
	"github.com/adfharrison1/go-records/pkg/snapshot"
)

func main() {
	// Command line flags
	var (
		port     = flag.String("port", "8080", "Server port")
		dataFile = flag.String("data-file", "go-records_data"+snapshot.FileExtension, "Snapshot file restored at startup and written on shutdown. Empty disables snapshots.")
		seedFile = flag.String("seed-file", "", "YAML file of records to insert when no snapshot was restored")
		noSeed   = flag.Bool("no-seed", false, "Start empty instead of with the example students")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ngo-records serves a student records table with a filterable, sortable view.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090 -no-seed              # Empty table on a custom port\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -seed-file students.yaml         # Seed from YAML\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data-file \"\"                    # Never touch disk\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	srv := server.NewServer()

	restored := 0
	saveOnExit := *dataFile != ""
	if *dataFile != "" {
		log.Printf("INFO: Loading records from: %s", *dataFile)
		var err error
		restored, err = srv.InitDB(*dataFile)
		if err != nil {
			saveOnExit = false
			log.Printf("WARN: %s is left untouched and will not be written on shutdown", *dataFile)
		}
	} else {
		log.Printf("WARN: Snapshots disabled - records are lost on shutdown")
	}

	if restored == 0 {
		switch {
		case *seedFile != "":
			records, err := snapshot.LoadSeedFile(*seedFile)
			if err != nil {
				log.Fatalf("ERROR: %v", err)
			}
			srv.Seed(records)
		case !*noSeed:
			srv.Seed(snapshot.DefaultSeed())
		}
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + *port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting go-records server on :%s", *port)
		log.Printf("API endpoints available at http://localhost:%s", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if saveOnExit {
		log.Printf("INFO: Saving records to: %s", *dataFile)
		if err := srv.SaveDB(*dataFile); err != nil {
			log.Printf("ERROR: Records were not saved: %v", err)
		}
	}

	log.Println("Server exited")
}
