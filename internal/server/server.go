// Package server provides the HTTP REST API for the RFP manager.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/rfp-manager/internal/db"
	"github.com/jonathan/rfp-manager/internal/dispatch"
	"github.com/jonathan/rfp-manager/internal/extraction"
	"github.com/jonathan/rfp-manager/internal/mail"
	"github.com/jonathan/rfp-manager/internal/types"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	CreateRFP(ctx context.Context, req types.CreateRFPRequest) (*types.RFP, error)
	GetRFP(ctx context.Context, id uuid.UUID) (*types.RFP, error)
	ListRFPs(ctx context.Context) ([]types.RFP, error)
	UpdateRFP(ctx context.Context, id uuid.UUID, req types.UpdateRFPRequest) (*types.RFP, error)
	DeleteRFP(ctx context.Context, id uuid.UUID) error

	CreateVendor(ctx context.Context, req types.CreateVendorRequest) (*types.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*types.Vendor, error)
	ListVendors(ctx context.Context) ([]types.Vendor, error)
	ResolveVendors(ctx context.Context, ids []uuid.UUID) ([]types.Vendor, error)

	CreateProposal(ctx context.Context, rfpID uuid.UUID, req types.CreateProposalRequest) (*types.Proposal, error)
	ListProposalsByRFP(ctx context.Context, rfpID uuid.UUID) ([]types.Proposal, error)
}

// Dispatcher sends one RFP to a set of vendors.
type Dispatcher interface {
	Dispatch(ctx context.Context, rfpID uuid.UUID, vendorIDs []uuid.UUID) (*dispatch.Outcome, error)
}

// extractFunc matches extraction.ExtractRFP; overridable in tests.
type extractFunc func(ctx context.Context, description, apiKey string) (*types.RFPDraft, error)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	dispatcher Dispatcher
	apiKey     string
	extract    extractFunc
	database   *db.DB
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	SMTP        mail.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		store:    database,
		apiKey:   cfg.APIKey,
		extract:  extraction.ExtractRFP,
		database: database,
	}

	// The mail transport is optional at startup; dispatch requests fail with
	// a clear error when it is absent.
	if cfg.SMTP.Host != "" {
		transport, err := mail.NewClient(cfg.SMTP)
		if err != nil {
			return nil, fmt.Errorf("failed to create mail client: %w", err)
		}
		s.dispatcher = dispatch.NewDispatcher(database, transport)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Extraction and dispatch calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// RFP endpoints
	mux.HandleFunc("POST /rfps", s.handleCreateRFP)
	mux.HandleFunc("POST /rfps/from-text", s.handleCreateRFPFromText)
	mux.HandleFunc("GET /rfps", s.handleListRFPs)
	mux.HandleFunc("GET /rfps/{id}", s.handleGetRFP)
	mux.HandleFunc("PUT /rfps/{id}", s.handleUpdateRFP)
	mux.HandleFunc("DELETE /rfps/{id}", s.handleDeleteRFP)
	mux.HandleFunc("POST /rfps/{id}/send", s.handleSendRFP)

	// Vendor endpoints
	mux.HandleFunc("POST /vendors", s.handleCreateVendor)
	mux.HandleFunc("GET /vendors", s.handleListVendors)
	mux.HandleFunc("GET /vendors/{id}", s.handleGetVendor)

	// Proposal endpoints
	mux.HandleFunc("POST /rfps/{id}/proposals", s.handleCreateProposal)
	mux.HandleFunc("GET /rfps/{id}/proposals", s.handleListProposals)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
