// internal/service/vehicle/vehicle.go
package vehicle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"secad-service/internal/domain/vehicle"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/pagination"
	"secad-service/internal/query"

	"go.uber.org/zap"
)

type VehicleService struct {
	repo   vehicle.Repository
	logger *zap.Logger
}

func NewVehicleService(repo vehicle.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

// CreateVehicle validates the form payload, allocates a registration number
// and persists the record.
func (s *VehicleService) CreateVehicle(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.Vehicle, error) {
	v := &vehicle.Vehicle{
		Plate:              strings.ToUpper(strings.TrimSpace(req.Plate)),
		State:              req.State,
		Brand:              strings.TrimSpace(req.Brand),
		Model:              strings.TrimSpace(req.Model),
		VehicleType:        req.VehicleType,
		HasKey:             req.HasKey,
		ChassisObservation: req.ChassisObservation,
		City:               req.City,
		BouTrv:             req.BouTrv,
		HasNoPlate:         req.HasNoPlate,
	}

	if req.HasNoPlate {
		v.Plate = vehicle.NoPlateSentinel
		v.State = vehicle.NoStateSentinel
	}

	if err := validateVehicle(v); err != nil {
		return nil, err
	}

	inspection, err := query.Date(req.InspectionDate)
	if err != nil || inspection == nil {
		return nil, fmt.Errorf("%w: invalid inspection date", xerrors.ErrInvalidInput)
	}
	v.InspectionDate = *inspection

	number, err := s.allocateRegistrationNumber(ctx, req.UseExternalNumber, req.ExternalNumber)
	if err != nil {
		return nil, err
	}
	v.RegistrationNumber = number

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("failed to create vehicle", zap.Error(err))
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("vehicle created",
		zap.String("id", v.ID),
		zap.Int64("registration_number", v.RegistrationNumber),
		zap.String("plate", v.Plate),
	)

	return v, nil
}

// allocateRegistrationNumber implements the two allocation modes: manual
// (caller supplies the number printed on the external paperwork) and auto
// (max existing + 1, or the seed when the collection is empty).
func (s *VehicleService) allocateRegistrationNumber(ctx context.Context, manual bool, external string) (int64, error) {
	if manual {
		n, err := strconv.ParseInt(strings.TrimSpace(external), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: registration number must be an integer", xerrors.ErrInvalidInput)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%w: registration number must be positive", xerrors.ErrInvalidInput)
		}
		return n, nil
	}

	max, ok, err := s.repo.MaxRegistrationNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read current registration number: %w", err)
	}
	if !ok {
		return vehicle.RegistrationSeed, nil
	}
	return max + 1, nil
}

// GetVehicle retrieves a vehicle by id.
func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateVehicle merges the non-nil fields of the request into the stored
// record. Toggling HasNoPlate on forces the plate sentinels; toggling it off
// clears both fields so the operator re-enters them.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, req *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Plate != nil {
		v.Plate = strings.ToUpper(strings.TrimSpace(*req.Plate))
	}
	if req.State != nil {
		v.State = *req.State
	}
	if req.Brand != nil {
		v.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		v.Model = strings.TrimSpace(*req.Model)
	}
	if req.VehicleType != nil {
		v.VehicleType = *req.VehicleType
	}
	if req.HasKey != nil {
		v.HasKey = *req.HasKey
	}
	if req.ChassisObservation != nil {
		v.ChassisObservation = *req.ChassisObservation
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.BouTrv != nil {
		v.BouTrv = *req.BouTrv
	}

	if req.HasNoPlate != nil && *req.HasNoPlate != v.HasNoPlate {
		v.HasNoPlate = *req.HasNoPlate
		if v.HasNoPlate {
			v.Plate = vehicle.NoPlateSentinel
			v.State = vehicle.NoStateSentinel
		} else {
			v.Plate = ""
			v.State = ""
		}
	}

	if req.InspectionDate != nil {
		inspection, err := query.Date(*req.InspectionDate)
		if err != nil || inspection == nil {
			return nil, fmt.Errorf("%w: invalid inspection date", xerrors.ErrInvalidInput)
		}
		v.InspectionDate = *inspection
	}
	if req.ReleaseDate != nil {
		release, err := query.Date(*req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid release date", xerrors.ErrInvalidInput)
		}
		v.ReleaseDate = release
	}

	if req.UseExternalNumber != nil && *req.UseExternalNumber {
		external := ""
		if req.ExternalNumber != nil {
			external = *req.ExternalNumber
		}
		number, err := s.allocateRegistrationNumber(ctx, true, external)
		if err != nil {
			return nil, err
		}
		v.RegistrationNumber = number
	}

	// Clearing the no-plate flag leaves plate and state empty on purpose, so
	// skip the record check for that transient shape.
	clearedNoPlate := !v.HasNoPlate && v.Plate == "" && v.State == ""
	if !clearedNoPlate {
		if err := validateVehicle(v); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("failed to update vehicle", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return v, nil
}

// SetReleaseDate records (or clears) the release of a vehicle. An empty date
// string marks the vehicle as back in the yard.
func (s *VehicleService) SetReleaseDate(ctx context.Context, id string, date string) (*vehicle.Vehicle, error) {
	release, err := query.Date(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid release date", xerrors.ErrInvalidInput)
	}

	if err := s.repo.SetReleaseDate(ctx, id, release); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle release date set",
		zap.String("id", id),
		zap.Bool("released", release != nil),
	)

	return s.repo.FindByID(ctx, id)
}

// DeleteVehicle removes a record permanently.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("vehicle deleted", zap.String("id", id))
	return nil
}

// ListVehicles returns one page of the full collection.
func (s *VehicleService) ListVehicles(ctx context.Context, page, pageSize int) (*vehicle.ListResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return paginate(vehicles, page, pageSize), nil
}

// SearchVehicles runs the two-phase filter: pushdown constraints in the
// store, remaining predicates over the fetched set, then pagination.
func (s *VehicleService) SearchVehicles(ctx context.Context, filters vehicle.SearchFilters, page, pageSize int) (*vehicle.ListResponse, error) {
	cons, preds, err := vehicle.BuildQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidInput, err)
	}

	vehicles, err := s.repo.Search(ctx, cons)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}

	vehicles = query.Apply(vehicles, preds)
	return paginate(vehicles, page, pageSize), nil
}

// FetchFiltered returns the whole filtered set without pagination, for the
// report and chat pipelines.
func (s *VehicleService) FetchFiltered(ctx context.Context, filters vehicle.ReportFilters) ([]vehicle.Vehicle, error) {
	var cons []query.Constraint
	if filters.City != "" {
		cons = append(cons, query.Eq("city", filters.City))
	}

	vehicles, err := s.repo.Search(ctx, cons)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	from, err := query.Date(filters.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", xerrors.ErrInvalidInput)
	}
	to, err := query.Date(filters.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", xerrors.ErrInvalidInput)
	}
	if from != nil || to != nil {
		vehicles = query.Apply(vehicles, []query.Predicate[vehicle.Vehicle]{
			func(v *vehicle.Vehicle) bool { return query.InRange(v.InspectionDate, from, to) },
		})
	}

	return vehicles, nil
}

func paginate(vehicles []vehicle.Vehicle, page, pageSize int) *vehicle.ListResponse {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	items, totalPages := pagination.Slice(vehicles, page, pageSize)
	return &vehicle.ListResponse{
		Vehicles:   items,
		Total:      len(vehicles),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func validateVehicle(v *vehicle.Vehicle) error {
	if !vehicle.ValidVehicleType(v.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", xerrors.ErrInvalidInput, v.VehicleType)
	}
	if !vehicle.ValidCity(v.City) {
		return fmt.Errorf("%w: unknown city %q", xerrors.ErrInvalidInput, v.City)
	}
	if v.HasNoPlate {
		if v.Plate != vehicle.NoPlateSentinel || v.State != vehicle.NoStateSentinel {
			return fmt.Errorf("%w: no-plate vehicles use the fixed placeholders", xerrors.ErrInvalidInput)
		}
		return nil
	}
	if v.Plate == "" {
		return fmt.Errorf("%w: plate is required", xerrors.ErrInvalidInput)
	}
	if !vehicle.ValidState(v.State) {
		return fmt.Errorf("%w: unknown state %q", xerrors.ErrInvalidInput, v.State)
	}
	return nil
}
