package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/rfp-manager/internal/types"
)

const vendorColumns = `id, name, email, category, created_at`

func scanVendor(row pgx.Row) (*types.Vendor, error) {
	var vendor types.Vendor
	err := row.Scan(&vendor.ID, &vendor.Name, &vendor.Email, &vendor.Category, &vendor.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// CreateVendor persists a new vendor contact and returns the stored record.
func (db *DB) CreateVendor(ctx context.Context, req types.CreateVendorRequest) (*types.Vendor, error) {
	vendor, err := scanVendor(db.pool.QueryRow(ctx,
		`INSERT INTO vendors (name, email, category)
		 VALUES ($1, $2, $3)
		 RETURNING `+vendorColumns,
		req.Name, req.Email, req.Category,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by id, or nil when it does not exist.
func (db *DB) GetVendor(ctx context.Context, id uuid.UUID) (*types.Vendor, error) {
	vendor, err := scanVendor(db.pool.QueryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

// ListVendors retrieves all vendors, newest first.
func (db *DB) ListVendors(ctx context.Context) ([]types.Vendor, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+vendorColumns+` FROM vendors ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []types.Vendor{}
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	return vendors, rows.Err()
}

// ResolveVendors returns the vendors matching ids, ordered by the first
// occurrence of each id in the request. Ids with no matching vendor are
// dropped; duplicates resolve once.
func (db *DB) ResolveVendors(ctx context.Context, ids []uuid.UUID) ([]types.Vendor, error) {
	if len(ids) == 0 {
		return []types.Vendor{}, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vendors: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]types.Vendor, len(ids))
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		byID[vendor.ID] = *vendor
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	resolved := []types.Vendor{}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if vendor, ok := byID[id]; ok {
			resolved = append(resolved, vendor)
		}
	}
	return resolved, nil
}
