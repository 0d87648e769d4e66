package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/rfp-manager/internal/types"
)

const proposalColumns = `id, rfp_id, vendor_id, price, delivery_time, payment_terms, warranty, summary, raw_response, created_at`

func scanProposal(row pgx.Row) (*types.Proposal, error) {
	var proposal types.Proposal
	err := row.Scan(
		&proposal.ID, &proposal.RFPID, &proposal.VendorID, &proposal.Price,
		&proposal.DeliveryTime, &proposal.PaymentTerms, &proposal.Warranty,
		&proposal.Summary, &proposal.RawResponse, &proposal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// CreateProposal persists a vendor proposal against an RFP. Proposals are
// stored for later review; nothing in this service processes them.
func (db *DB) CreateProposal(ctx context.Context, rfpID uuid.UUID, req types.CreateProposalRequest) (*types.Proposal, error) {
	proposal, err := scanProposal(db.pool.QueryRow(ctx,
		`INSERT INTO proposals (rfp_id, vendor_id, price, delivery_time, payment_terms, warranty, summary, raw_response)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+proposalColumns,
		rfpID, req.VendorID, req.Price, req.DeliveryTime, req.PaymentTerms, req.Warranty, req.Summary, req.RawResponse,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return proposal, nil
}

// ListProposalsByRFP retrieves all proposals submitted against an RFP,
// newest first.
func (db *DB) ListProposalsByRFP(ctx context.Context, rfpID uuid.UUID) ([]types.Proposal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE rfp_id = $1 ORDER BY created_at DESC`,
		rfpID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	proposals := []types.Proposal{}
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, *proposal)
	}
	return proposals, rows.Err()
}
