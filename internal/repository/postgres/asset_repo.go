// internal/repository/postgres/asset_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"secad-service/internal/domain/asset"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/query"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

var assetSearchColumns = map[string]bool{
	"general_tag":        true,
	"local_tag":          true,
	"sector":             true,
	"asset_class":        true,
	"conservation_state": true,
	"created_at":         true,
}

const assetColumns = `
	id, sector, general_tag, local_tag, description, asset_class,
	conservation_state, acquisition_date, incorporation_type,
	acquisition_value, evaluation_value, net_value, transfer_history,
	created_at, updated_at
`

type AssetRepository struct {
	db *DB
}

func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts a new asset record, assigning its id.
func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	q := `
		INSERT INTO assets (
			id, sector, general_tag, local_tag, description, asset_class,
			conservation_state, acquisition_date, incorporation_type,
			acquisition_value, evaluation_value, net_value, transfer_history
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	a.ID = ulid.Make().String()
	if a.TransferHistory == nil {
		a.TransferHistory = []asset.Transfer{}
	}

	historyJSON, err := json.Marshal(a.TransferHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer history: %w", err)
	}

	err = r.db.QueryRow(
		ctx, q,
		a.ID, a.Sector, a.GeneralTag, a.LocalTag, a.Description, a.AssetClass,
		a.ConservationState, a.AcquisitionDate, a.IncorporationType,
		a.AcquisitionValue, a.EvaluationValue, a.NetValue, historyJSON,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// FindByID retrieves an asset by id.
func (r *AssetRepository) FindByID(ctx context.Context, id string) (*asset.Asset, error) {
	q := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	var a asset.Asset
	var historyJSON []byte

	err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Sector, &a.GeneralTag, &a.LocalTag, &a.Description, &a.AssetClass,
		&a.ConservationState, &a.AcquisitionDate, &a.IncorporationType,
		&a.AcquisitionValue, &a.EvaluationValue, &a.NetValue, &historyJSON,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	if err := json.Unmarshal(historyJSON, &a.TransferHistory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfer history: %w", err)
	}

	return &a, nil
}

// Update rewrites the descriptive columns. The sector and the transfer
// history are only touched through Transfer.
func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	q := `
		UPDATE assets
		SET general_tag = $1, local_tag = $2, description = $3, asset_class = $4,
		    conservation_state = $5, acquisition_date = $6, incorporation_type = $7,
		    acquisition_value = $8, evaluation_value = $9, net_value = $10,
		    updated_at = $11
		WHERE id = $12
	`

	result, err := r.db.Exec(
		ctx, q,
		a.GeneralTag, a.LocalTag, a.Description, a.AssetClass,
		a.ConservationState, a.AcquisitionDate, a.IncorporationType,
		a.AcquisitionValue, a.EvaluationValue, a.NetValue,
		time.Now(), a.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// List returns the full collection, newest first.
func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	q := `SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	return scanAssets(rows)
}

// Search evaluates the pushdown-eligible constraints server-side.
func (r *AssetRepository) Search(ctx context.Context, cons []query.Constraint) ([]asset.Asset, error) {
	where, args, orderBy, err := buildClauses(cons, assetSearchColumns)
	if err != nil {
		return nil, err
	}
	if orderBy == "" {
		orderBy = " ORDER BY created_at DESC"
	}

	q := `SELECT ` + assetColumns + ` FROM assets` + where + orderBy

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search assets: %w", err)
	}
	defer rows.Close()

	return scanAssets(rows)
}

// Transfer sets the sector and appends the history entry in a single UPDATE
// so the stored record can never hold one without the other.
func (r *AssetRepository) Transfer(ctx context.Context, id string, entry asset.Transfer, at time.Time) error {
	q := `
		UPDATE assets
		SET sector = $1,
		    transfer_history = transfer_history || $2::jsonb,
		    updated_at = $3
		WHERE id = $4
	`

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer entry: %w", err)
	}

	result, err := r.db.Exec(ctx, q, entry.ToSector, entryJSON, at, id)
	if err != nil {
		return fmt.Errorf("failed to transfer asset: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// DistinctDescriptions returns the unique descriptions for autocomplete.
func (r *AssetRepository) DistinctDescriptions(ctx context.Context) ([]string, error) {
	q := `SELECT DISTINCT description FROM assets ORDER BY description`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptions: %w", err)
	}
	defer rows.Close()

	descriptions := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan description: %w", err)
		}
		descriptions = append(descriptions, d)
	}

	return descriptions, rows.Err()
}

func scanAssets(rows pgx.Rows) ([]asset.Asset, error) {
	assets := []asset.Asset{}
	for rows.Next() {
		var a asset.Asset
		var historyJSON []byte

		err := rows.Scan(
			&a.ID, &a.Sector, &a.GeneralTag, &a.LocalTag, &a.Description, &a.AssetClass,
			&a.ConservationState, &a.AcquisitionDate, &a.IncorporationType,
			&a.AcquisitionValue, &a.EvaluationValue, &a.NetValue, &historyJSON,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}

		if err := json.Unmarshal(historyJSON, &a.TransferHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transfer history: %w", err)
		}

		assets = append(assets, a)
	}

	return assets, rows.Err()
}
