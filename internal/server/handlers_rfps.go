package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/rfp-manager/internal/db"
	"github.com/jonathan/rfp-manager/internal/dispatch"
	"github.com/jonathan/rfp-manager/internal/extraction"
	"github.com/jonathan/rfp-manager/internal/types"
)

// SendRFPResponse represents the response for a dispatch request.
type SendRFPResponse struct {
	Message  string          `json:"message"`
	SentTo   []string        `json:"sentTo"`
	FailedTo []string        `json:"failedTo"`
	Skipped  []string        `json:"skipped"`
	Status   dispatch.Status `json:"status,omitempty"`
}

// handleCreateRFP creates an RFP from an explicit payload
func (s *Server) handleCreateRFP(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRFPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	rfp, err := s.store.CreateRFP(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, rfp)
}

// handleCreateRFPFromText generates an RFP from a free-text description via
// structured extraction, then persists it. On extraction failure nothing is
// stored.
func (s *Server) handleCreateRFPFromText(w http.ResponseWriter, r *http.Request) {
	var req types.RFPFromTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Description is required")
		return
	}

	if s.apiKey == "" {
		s.errorResponse(w, http.StatusInternalServerError, "AI not configured (missing API key)")
		return
	}

	draft, err := s.extract(r.Context(), req.Description, s.apiKey)
	if err != nil {
		var schemaErr *extraction.ExtractionError
		if errors.As(err, &schemaErr) {
			s.errorResponse(w, HTTPStatus(err), "Failed to generate RFP from text: "+schemaErr.Message)
			return
		}
		s.errorResponse(w, HTTPStatus(err), "Failed to generate RFP from text")
		return
	}

	rfp, err := s.store.CreateRFP(r.Context(), types.CreateRFPRequest{
		Title:        draft.Title,
		Requirements: draft.Requirements,
		Budget:       draft.Budget,
		DeliveryTime: draft.DeliveryTime,
		PaymentTerms: draft.PaymentTerms,
		Warranty:     draft.Warranty,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, rfp)
}

// handleSendRFP dispatches an RFP to the requested vendors
func (s *Server) handleSendRFP(w http.ResponseWriter, r *http.Request) {
	rfpID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	var req types.SendRFPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "vendorIds array is required")
		return
	}

	if s.dispatcher == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Mail transport not configured")
		return
	}

	outcome, err := s.dispatcher.Dispatch(r.Context(), rfpID, req.VendorIDs)
	if err != nil {
		// A dispatch with zero successes still reports which recipients were
		// attempted and which were skipped.
		var dispatchErr *dispatch.DispatchError
		if errors.As(err, &dispatchErr) {
			s.jsonResponse(w, http.StatusInternalServerError, SendRFPResponse{
				Message:  dispatchErr.Message,
				SentTo:   []string{},
				FailedTo: dispatchErr.FailedTo,
				Skipped:  dispatchErr.Skipped,
			})
			return
		}

		var notFoundErr *dispatch.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.errorResponse(w, http.StatusNotFound, "RFP not found")
			return
		}

		var validationErr *dispatch.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, validationErr.Message)
			return
		}

		s.errorResponse(w, http.StatusInternalServerError, "Failed to send RFP emails")
		return
	}

	message := "RFP sent to all vendors"
	if outcome.Status == dispatch.StatusPartialSent {
		message = "RFP sent to some vendors"
	}

	s.jsonResponse(w, http.StatusOK, SendRFPResponse{
		Message:  message,
		SentTo:   outcome.SentTo,
		FailedTo: outcome.FailedTo,
		Skipped:  outcome.Skipped,
		Status:   outcome.Status,
	})
}

// handleListRFPs lists all RFPs, newest first
func (s *Server) handleListRFPs(w http.ResponseWriter, r *http.Request) {
	rfps, err := s.store.ListRFPs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rfps)
}

// handleGetRFP retrieves a single RFP by id
func (s *Server) handleGetRFP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	rfp, err := s.store.GetRFP(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rfp == nil {
		s.errorResponse(w, http.StatusNotFound, "RFP not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rfp)
}

// handleUpdateRFP applies a partial update to an RFP
func (s *Server) handleUpdateRFP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	var req types.UpdateRFPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rfp, err := s.store.UpdateRFP(r.Context(), id, req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rfp == nil {
		s.errorResponse(w, http.StatusNotFound, "RFP not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rfp)
}

// handleDeleteRFP deletes an RFP
func (s *Server) handleDeleteRFP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid RFP ID")
		return
	}

	if err := s.store.DeleteRFP(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "RFP not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "RFP deleted"})
}
