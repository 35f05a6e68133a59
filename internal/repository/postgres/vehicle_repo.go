// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secad-service/internal/domain/vehicle"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/query"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

var vehicleSearchColumns = map[string]bool{
	"registration_number": true,
	"plate":               true,
	"state":               true,
	"brand":               true,
	"model":               true,
	"vehicle_type":        true,
	"city":                true,
	"bou_trv":             true,
	"has_key":             true,
}

const vehicleColumns = `
	id, registration_number, plate, state, inspection_date, release_date,
	brand, model, vehicle_type, has_key, chassis_observation, city, bou_trv,
	has_no_plate, created_at, updated_at
`

type VehicleRepository struct {
	db *DB
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts a new vehicle record, assigning its id.
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	q := `
		INSERT INTO vehicles (
			id, registration_number, plate, state, inspection_date, release_date,
			brand, model, vehicle_type, has_key, chassis_observation, city,
			bou_trv, has_no_plate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`

	v.ID = ulid.Make().String()

	err := r.db.QueryRow(
		ctx, q,
		v.ID, v.RegistrationNumber, v.Plate, v.State, v.InspectionDate, v.ReleaseDate,
		v.Brand, v.Model, v.VehicleType, v.HasKey, v.ChassisObservation, v.City,
		v.BouTrv, v.HasNoPlate,
	).Scan(&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// FindByID retrieves a vehicle by id.
func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	var v vehicle.Vehicle
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.RegistrationNumber, &v.Plate, &v.State, &v.InspectionDate, &v.ReleaseDate,
		&v.Brand, &v.Model, &v.VehicleType, &v.HasKey, &v.ChassisObservation, &v.City,
		&v.BouTrv, &v.HasNoPlate, &v.CreatedAt, &v.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	return &v, nil
}

// Update rewrites every mutable column of the record.
func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	q := `
		UPDATE vehicles
		SET registration_number = $1, plate = $2, state = $3, inspection_date = $4,
		    release_date = $5, brand = $6, model = $7, vehicle_type = $8,
		    has_key = $9, chassis_observation = $10, city = $11, bou_trv = $12,
		    has_no_plate = $13, updated_at = $14
		WHERE id = $15
	`

	result, err := r.db.Exec(
		ctx, q,
		v.RegistrationNumber, v.Plate, v.State, v.InspectionDate,
		v.ReleaseDate, v.Brand, v.Model, v.VehicleType,
		v.HasKey, v.ChassisObservation, v.City, v.BouTrv,
		v.HasNoPlate, time.Now(), v.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes the record permanently.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// List returns the full collection ordered by registration number descending.
func (r *VehicleRepository) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY registration_number DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// Search evaluates the pushdown-eligible constraints server-side.
func (r *VehicleRepository) Search(ctx context.Context, cons []query.Constraint) ([]vehicle.Vehicle, error) {
	where, args, orderBy, err := buildClauses(cons, vehicleSearchColumns)
	if err != nil {
		return nil, err
	}
	if orderBy == "" {
		orderBy = " ORDER BY registration_number DESC"
	}

	q := `SELECT ` + vehicleColumns + ` FROM vehicles` + where + orderBy

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// MaxRegistrationNumber returns the highest registration number in the
// collection, or ok=false when the collection is empty.
func (r *VehicleRepository) MaxRegistrationNumber(ctx context.Context) (int64, bool, error) {
	q := `SELECT registration_number FROM vehicles ORDER BY registration_number DESC LIMIT 1`

	var max int64
	err := r.db.QueryRow(ctx, q).Scan(&max)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read max registration number: %w", err)
	}

	return max, true, nil
}

// SetReleaseDate updates only the release date; nil clears it.
func (r *VehicleRepository) SetReleaseDate(ctx context.Context, id string, date *time.Time) error {
	q := `UPDATE vehicles SET release_date = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, date, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set release date: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func scanVehicles(rows pgx.Rows) ([]vehicle.Vehicle, error) {
	vehicles := []vehicle.Vehicle{}
	for rows.Next() {
		var v vehicle.Vehicle
		err := rows.Scan(
			&v.ID, &v.RegistrationNumber, &v.Plate, &v.State, &v.InspectionDate, &v.ReleaseDate,
			&v.Brand, &v.Model, &v.VehicleType, &v.HasKey, &v.ChassisObservation, &v.City,
			&v.BouTrv, &v.HasNoPlate, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}
