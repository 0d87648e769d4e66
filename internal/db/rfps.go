package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/rfp-manager/internal/types"
)

const rfpColumns = `id, title, requirements, budget, delivery_time, payment_terms, warranty, created_at, updated_at`

// scanRFP scans one RFP row.
func scanRFP(row pgx.Row) (*types.RFP, error) {
	var rfp types.RFP
	err := row.Scan(
		&rfp.ID, &rfp.Title, &rfp.Requirements, &rfp.Budget,
		&rfp.DeliveryTime, &rfp.PaymentTerms, &rfp.Warranty,
		&rfp.CreatedAt, &rfp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rfp.Requirements == nil {
		rfp.Requirements = []string{}
	}
	return &rfp, nil
}

// CreateRFP persists a new RFP and returns the stored record.
func (db *DB) CreateRFP(ctx context.Context, req types.CreateRFPRequest) (*types.RFP, error) {
	requirements := req.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	rfp, err := scanRFP(db.pool.QueryRow(ctx,
		`INSERT INTO rfps (title, requirements, budget, delivery_time, payment_terms, warranty)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+rfpColumns,
		req.Title, requirements, req.Budget, req.DeliveryTime, req.PaymentTerms, req.Warranty,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create RFP: %w", err)
	}
	return rfp, nil
}

// GetRFP retrieves an RFP by id, or nil when it does not exist.
func (db *DB) GetRFP(ctx context.Context, id uuid.UUID) (*types.RFP, error) {
	rfp, err := scanRFP(db.pool.QueryRow(ctx,
		`SELECT `+rfpColumns+` FROM rfps WHERE id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get RFP: %w", err)
	}
	return rfp, nil
}

// ListRFPs retrieves all RFPs, newest first.
func (db *DB) ListRFPs(ctx context.Context) ([]types.RFP, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+rfpColumns+` FROM rfps ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list RFPs: %w", err)
	}
	defer rows.Close()

	rfps := []types.RFP{}
	for rows.Next() {
		rfp, err := scanRFP(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan RFP: %w", err)
		}
		rfps = append(rfps, *rfp)
	}
	return rfps, rows.Err()
}

// UpdateRFP applies a partial update and returns the stored record, or nil
// when the RFP does not exist. Nil request fields are left unchanged.
func (db *DB) UpdateRFP(ctx context.Context, id uuid.UUID, req types.UpdateRFPRequest) (*types.RFP, error) {
	rfp, err := scanRFP(db.pool.QueryRow(ctx,
		`UPDATE rfps SET
			title         = COALESCE($2, title),
			requirements  = COALESCE($3, requirements),
			budget        = COALESCE($4, budget),
			delivery_time = COALESCE($5, delivery_time),
			payment_terms = COALESCE($6, payment_terms),
			warranty      = COALESCE($7, warranty),
			updated_at    = NOW()
		 WHERE id = $1
		 RETURNING `+rfpColumns,
		id, req.Title, req.Requirements, req.Budget, req.DeliveryTime, req.PaymentTerms, req.Warranty,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update RFP: %w", err)
	}
	return rfp, nil
}

// DeleteRFP deletes an RFP and its proposals (via cascade).
func (db *DB) DeleteRFP(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM rfps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete RFP: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
