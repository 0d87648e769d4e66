package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/rfp-manager/internal/types"
)

// handleCreateVendor registers a vendor contact
func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var req types.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	vendor, err := s.store.CreateVendor(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, vendor)
}

// handleListVendors lists all vendors, newest first
func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.store.ListVendors(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, vendors)
}

// handleGetVendor retrieves a single vendor by id
func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	vendor, err := s.store.GetVendor(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if vendor == nil {
		s.errorResponse(w, http.StatusNotFound, "Vendor not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, vendor)
}
