// Package types defines the shared data model for the RFP manager.
package types

import (
	"time"

	"github.com/google/uuid"
)

// RFP is a structured Request for Proposal owned by the record store.
type RFP struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Requirements []string   `json:"requirements"`
	Budget       *float64   `json:"budget,omitempty"`
	DeliveryTime *string    `json:"delivery_time,omitempty"`
	PaymentTerms *string    `json:"payment_terms,omitempty"`
	Warranty     *string    `json:"warranty,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Vendor is a prospective supplier contact. A vendor with an empty email is
// never a valid message recipient.
type Vendor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Proposal is a vendor response to an RFP. Proposals are persisted but never
// processed by this service.
type Proposal struct {
	ID           uuid.UUID `json:"id"`
	RFPID        uuid.UUID `json:"rfp_id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	Price        *float64  `json:"price,omitempty"`
	DeliveryTime *string   `json:"delivery_time,omitempty"`
	PaymentTerms *string   `json:"payment_terms,omitempty"`
	Warranty     *string   `json:"warranty,omitempty"`
	Summary      *string   `json:"summary,omitempty"`
	RawResponse  *string   `json:"raw_response,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RFPDraft is the transient result of structured extraction. It carries the
// six contracted fields and nothing else; persistence is the caller's job.
type RFPDraft struct {
	Title        string   `json:"title"`
	Requirements []string `json:"requirements"`
	Budget       *float64 `json:"budget"`
	DeliveryTime *string  `json:"deliveryTime"`
	PaymentTerms *string  `json:"paymentTerms"`
	Warranty     *string  `json:"warranty"`
}
