package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateRFPRequest represents the request to create an RFP manually.
type CreateRFPRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Requirements []string `json:"requirements,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	DeliveryTime *string  `json:"delivery_time,omitempty"`
	PaymentTerms *string  `json:"payment_terms,omitempty"`
	Warranty     *string  `json:"warranty,omitempty"`
}

// UpdateRFPRequest represents a partial RFP update. Nil fields are left
// unchanged.
type UpdateRFPRequest struct {
	Title        *string   `json:"title,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Budget       *float64  `json:"budget,omitempty"`
	DeliveryTime *string   `json:"delivery_time,omitempty"`
	PaymentTerms *string   `json:"payment_terms,omitempty"`
	Warranty     *string   `json:"warranty,omitempty"`
}

// RFPFromTextRequest represents the request to generate an RFP from a
// free-text description.
type RFPFromTextRequest struct {
	Description string `json:"description" validate:"required,min=1"`
}

// SendRFPRequest represents the request to dispatch an RFP to vendors.
type SendRFPRequest struct {
	VendorIDs []uuid.UUID `json:"vendorIds" validate:"required,min=1"`
}

// CreateVendorRequest represents the request to register a vendor contact.
type CreateVendorRequest struct {
	Name     string  `json:"name" validate:"required,min=1"`
	Email    string  `json:"email" validate:"required,email"`
	Category *string `json:"category,omitempty"`
}

// CreateProposalRequest represents a vendor proposal submitted against an RFP.
type CreateProposalRequest struct {
	VendorID     uuid.UUID `json:"vendor_id" validate:"required"`
	Price        *float64  `json:"price,omitempty"`
	DeliveryTime *string   `json:"delivery_time,omitempty"`
	PaymentTerms *string   `json:"payment_terms,omitempty"`
	Warranty     *string   `json:"warranty,omitempty"`
	Summary      *string   `json:"summary,omitempty"`
	RawResponse  *string   `json:"raw_response,omitempty"`
}

// Validate validates the CreateRFPRequest using the validator.
func (r *CreateRFPRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RFPFromTextRequest using the validator.
func (r *RFPFromTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SendRFPRequest using the validator.
func (r *SendRFPRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateVendorRequest using the validator.
func (r *CreateVendorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateProposalRequest using the validator.
func (r *CreateProposalRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
