// internal/service/asset/asset.go
package asset

import (
	"context"
	"fmt"
	"time"

	"secad-service/internal/domain/asset"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/pkg/pagination"
	"secad-service/internal/query"

	"go.uber.org/zap"
)

type AssetService struct {
	repo   asset.Repository
	logger *zap.Logger
}

func NewAssetService(repo asset.Repository, logger *zap.Logger) *AssetService {
	return &AssetService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAsset validates the form payload and persists the record with an
// empty transfer history.
func (s *AssetService) CreateAsset(ctx context.Context, req *asset.CreateAssetRequest) (*asset.Asset, error) {
	a := &asset.Asset{
		Sector:            req.Sector,
		GeneralTag:        req.GeneralTag,
		LocalTag:          req.LocalTag,
		Description:       req.Description,
		AssetClass:        req.AssetClass,
		ConservationState: req.ConservationState,
		IncorporationType: req.IncorporationType,
		AcquisitionValue:  req.AcquisitionValue,
		EvaluationValue:   req.EvaluationValue,
		NetValue:          req.NetValue,
		TransferHistory:   []asset.Transfer{},
	}

	if err := validateAsset(a); err != nil {
		return nil, err
	}

	acquired, err := query.Date(req.AcquisitionDate)
	if err != nil || acquired == nil {
		return nil, fmt.Errorf("%w: invalid acquisition date", xerrors.ErrInvalidInput)
	}
	a.AcquisitionDate = *acquired

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("failed to create asset", zap.Error(err))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.logger.Info("asset created",
		zap.String("id", a.ID),
		zap.String("general_tag", a.GeneralTag),
		zap.String("sector", a.Sector),
	)

	return a, nil
}

// GetAsset retrieves an asset by id.
func (s *AssetService) GetAsset(ctx context.Context, id string) (*asset.Asset, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAsset merges the non-nil fields of the request into the stored
// record. The sector is untouchable here; use TransferAsset.
func (s *AssetService) UpdateAsset(ctx context.Context, id string, req *asset.UpdateAssetRequest) (*asset.Asset, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GeneralTag != nil {
		a.GeneralTag = *req.GeneralTag
	}
	if req.LocalTag != nil {
		a.LocalTag = *req.LocalTag
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.AssetClass != nil {
		a.AssetClass = *req.AssetClass
	}
	if req.ConservationState != nil {
		a.ConservationState = *req.ConservationState
	}
	if req.IncorporationType != nil {
		a.IncorporationType = *req.IncorporationType
	}
	if req.AcquisitionValue != nil {
		a.AcquisitionValue = *req.AcquisitionValue
	}
	if req.EvaluationValue != nil {
		a.EvaluationValue = *req.EvaluationValue
	}
	if req.NetValue != nil {
		a.NetValue = *req.NetValue
	}
	if req.AcquisitionDate != nil {
		acquired, err := query.Date(*req.AcquisitionDate)
		if err != nil || acquired == nil {
			return nil, fmt.Errorf("%w: invalid acquisition date", xerrors.ErrInvalidInput)
		}
		a.AcquisitionDate = *acquired
	}

	if err := validateAsset(a); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("failed to update asset", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return a, nil
}

// TransferAsset moves an asset to another sector, appending the history
// entry and updating the sector in the same store write.
func (s *AssetService) TransferAsset(ctx context.Context, id string, req *asset.TransferRequest) (*asset.Asset, error) {
	if !asset.ValidSector(req.ToSector) {
		return nil, fmt.Errorf("%w: unknown sector %q", xerrors.ErrInvalidInput, req.ToSector)
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Sector == req.ToSector {
		return nil, fmt.Errorf("%w: asset is already in sector %q", xerrors.ErrInvalidInput, req.ToSector)
	}

	now := time.Now().UTC()
	entry := asset.Transfer{
		FromSector: a.Sector,
		ToSector:   req.ToSector,
		Date:       now,
		Reason:     req.Reason,
	}

	if err := s.repo.Transfer(ctx, id, entry, now); err != nil {
		s.logger.Error("failed to transfer asset", zap.Error(err), zap.String("id", id))
		return nil, err
	}

	s.logger.Info("asset transferred",
		zap.String("id", id),
		zap.String("from", entry.FromSector),
		zap.String("to", entry.ToSector),
	)

	return s.repo.FindByID(ctx, id)
}

// RemoveAsset decommissions an asset by transferring it to the removal
// sector. Records are never structurally deleted.
func (s *AssetService) RemoveAsset(ctx context.Context, id string, reason string) (*asset.Asset, error) {
	return s.TransferAsset(ctx, id, &asset.TransferRequest{
		ToSector: asset.RemovedSector,
		Reason:   reason,
	})
}

// ListAssets returns one page of the full collection.
func (s *AssetService) ListAssets(ctx context.Context, page, pageSize int) (*asset.ListResponse, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return paginate(assets, page, pageSize), nil
}

// SearchAssets runs the two-phase filter and paginates the result.
func (s *AssetService) SearchAssets(ctx context.Context, filters asset.SearchFilters, page, pageSize int) (*asset.ListResponse, error) {
	cons, preds, err := asset.BuildQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidInput, err)
	}

	assets, err := s.repo.Search(ctx, cons)
	if err != nil {
		return nil, fmt.Errorf("failed to search assets: %w", err)
	}

	assets = query.Apply(assets, preds)
	return paginate(assets, page, pageSize), nil
}

// FetchFiltered returns the whole filtered set without pagination, for the
// report and chat pipelines.
func (s *AssetService) FetchFiltered(ctx context.Context, filters asset.ReportFilters) ([]asset.Asset, error) {
	var cons []query.Constraint
	if filters.Sector != "" {
		cons = append(cons, query.Eq("sector", filters.Sector))
	}

	assets, err := s.repo.Search(ctx, cons)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
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
		assets = query.Apply(assets, []query.Predicate[asset.Asset]{
			func(a *asset.Asset) bool { return query.InRange(a.AcquisitionDate, from, to) },
		})
	}

	return assets, nil
}

// Descriptions returns the distinct description strings for autocomplete.
func (s *AssetService) Descriptions(ctx context.Context) ([]string, error) {
	return s.repo.DistinctDescriptions(ctx)
}

func paginate(assets []asset.Asset, page, pageSize int) *asset.ListResponse {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	items, totalPages := pagination.Slice(assets, page, pageSize)
	return &asset.ListResponse{
		Assets:     items,
		Total:      len(assets),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func validateAsset(a *asset.Asset) error {
	if !asset.ValidSector(a.Sector) {
		return fmt.Errorf("%w: unknown sector %q", xerrors.ErrInvalidInput, a.Sector)
	}
	if !asset.ValidClass(a.AssetClass) {
		return fmt.Errorf("%w: unknown asset class %q", xerrors.ErrInvalidInput, a.AssetClass)
	}
	if !asset.ValidConservationState(a.ConservationState) {
		return fmt.Errorf("%w: unknown conservation state %q", xerrors.ErrInvalidInput, a.ConservationState)
	}
	if !asset.ValidIncorporationType(a.IncorporationType) {
		return fmt.Errorf("%w: unknown incorporation type %q", xerrors.ErrInvalidInput, a.IncorporationType)
	}
	if a.AcquisitionValue < 0 || a.EvaluationValue < 0 || a.NetValue < 0 {
		return fmt.Errorf("%w: monetary values must be non-negative", xerrors.ErrInvalidInput)
	}
	return nil
}
