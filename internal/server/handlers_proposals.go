package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/rfp-manager/internal/types"
)

// handleCreateProposal records a vendor proposal against an RFP. Proposals
// are persisted for later review; they are never parsed or scored here.
func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	rfpID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	var req types.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "vendor_id is required")
		return
	}

	rfp, err := s.store.GetRFP(r.Context(), rfpID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rfp == nil {
		s.errorResponse(w, http.StatusNotFound, "RFP not found")
		return
	}

	proposal, err := s.store.CreateProposal(r.Context(), rfpID, req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, proposal)
}

// handleListProposals lists the proposals submitted against an RFP
func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	rfpID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	proposals, err := s.store.ListProposalsByRFP(r.Context(), rfpID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, proposals)
}
