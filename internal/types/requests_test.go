package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateRFPRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRFPRequest
		wantErr bool
	}{
		{name: "valid", req: CreateRFPRequest{Title: "Laptops"}, wantErr: false},
		{name: "missing title", req: CreateRFPRequest{Requirements: []string{"16GB RAM"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRFPFromTextRequest_Validate(t *testing.T) {
	valid := RFPFromTextRequest{Description: "need 20 laptops"}
	assert.NoError(t, valid.Validate())

	empty := RFPFromTextRequest{}
	assert.Error(t, empty.Validate())
}

func TestSendRFPRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SendRFPRequest
		wantErr bool
	}{
		{name: "valid", req: SendRFPRequest{VendorIDs: []uuid.UUID{uuid.New()}}, wantErr: false},
		{name: "nil vendor ids", req: SendRFPRequest{}, wantErr: true},
		{name: "empty vendor ids", req: SendRFPRequest{VendorIDs: []uuid.UUID{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateVendorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateVendorRequest
		wantErr bool
	}{
		{name: "valid", req: CreateVendorRequest{Name: "Acme", Email: "sales@acme.example"}, wantErr: false},
		{name: "missing name", req: CreateVendorRequest{Email: "sales@acme.example"}, wantErr: true},
		{name: "missing email", req: CreateVendorRequest{Name: "Acme"}, wantErr: true},
		{name: "malformed email", req: CreateVendorRequest{Name: "Acme", Email: "not-an-email"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateProposalRequest_Validate(t *testing.T) {
	valid := CreateProposalRequest{VendorID: uuid.New()}
	assert.NoError(t, valid.Validate())

	missing := CreateProposalRequest{}
	assert.Error(t, missing.Validate())
}
