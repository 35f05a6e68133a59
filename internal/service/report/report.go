// internal/service/report/report.go
package report

import (
	"bytes"
	"context"
	"fmt"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/report"
	assetsvc "secad-service/internal/service/asset"
	vehiclesvc "secad-service/internal/service/vehicle"
	"secad-service/internal/stats"

	"go.uber.org/zap"
)

type ReportService struct {
	vehicles *vehiclesvc.VehicleService
	assets   *assetsvc.AssetService
	logger   *zap.Logger
}

func NewReportService(vehicles *vehiclesvc.VehicleService, assets *assetsvc.AssetService, logger *zap.Logger) *ReportService {
	return &ReportService{
		vehicles: vehicles,
		assets:   assets,
		logger:   logger,
	}
}

// VehicleStats fetches the filtered set and aggregates it.
func (s *ReportService) VehicleStats(ctx context.Context, filters vehicle.ReportFilters) (stats.VehicleStats, error) {
	records, err := s.vehicles.FetchFiltered(ctx, filters)
	if err != nil {
		return stats.VehicleStats{}, err
	}
	return stats.ForVehicles(records), nil
}

// AssetStats fetches the filtered set and aggregates it.
func (s *ReportService) AssetStats(ctx context.Context, filters asset.ReportFilters) (stats.AssetStats, error) {
	records, err := s.assets.FetchFiltered(ctx, filters)
	if err != nil {
		return stats.AssetStats{}, err
	}
	return stats.ForAssets(records), nil
}

// VehiclePDF renders the printable vehicle report for the filtered set.
func (s *ReportService) VehiclePDF(ctx context.Context, filters vehicle.ReportFilters) ([]byte, error) {
	records, err := s.vehicles.FetchFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = report.RenderVehiclePDF(&buf, report.VehicleReport{
		Filters:  filters,
		Vehicles: records,
		Stats:    stats.ForVehicles(records),
	})
	if err != nil {
		s.logger.Error("vehicle report rendering failed", zap.Error(err))
		return nil, fmt.Errorf("%w: report rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}

// AssetPDF renders the printable asset report for the filtered set.
func (s *ReportService) AssetPDF(ctx context.Context, filters asset.ReportFilters) ([]byte, error) {
	records, err := s.assets.FetchFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = report.RenderAssetPDF(&buf, report.AssetReport{
		Filters: report.ReportPeriod{From: filters.DateFrom, To: filters.DateTo},
		Sector:  filters.Sector,
		Assets:  records,
		Stats:   stats.ForAssets(records),
	})
	if err != nil {
		s.logger.Error("asset report rendering failed", zap.Error(err))
		return nil, fmt.Errorf("%w: report rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}

// VehicleXLSX exports the filtered set as a workbook.
func (s *ReportService) VehicleXLSX(ctx context.Context, filters vehicle.ReportFilters) ([]byte, error) {
	records, err := s.vehicles.FetchFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.RenderVehicleXLSX(&buf, records); err != nil {
		s.logger.Error("vehicle workbook rendering failed", zap.Error(err))
		return nil, fmt.Errorf("%w: workbook rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}

// AssetXLSX exports the filtered set as a workbook.
func (s *ReportService) AssetXLSX(ctx context.Context, filters asset.ReportFilters) ([]byte, error) {
	records, err := s.assets.FetchFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.RenderAssetXLSX(&buf, records); err != nil {
		s.logger.Error("asset workbook rendering failed", zap.Error(err))
		return nil, fmt.Errorf("%w: workbook rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}

// Valid chart dimensions per collection.
const (
	ChartVehicleByCity  = "city"
	ChartVehicleByType  = "type"
	ChartVehicleByState = "state"
	ChartAssetBySector  = "sector"
	ChartAssetByState   = "conservation"
	ChartAssetByClass   = "class"
)

// VehicleChart renders one PNG chart for the chosen grouping dimension.
func (s *ReportService) VehicleChart(ctx context.Context, filters vehicle.ReportFilters, dimension string) ([]byte, error) {
	agg, err := s.VehicleStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch dimension {
	case ChartVehicleByCity:
		err = report.RenderPie(&buf, "Veículos por Cidade", report.SplitPoints(agg.ByCity))
	case ChartVehicleByType:
		err = report.RenderBar(&buf, "Veículos por Tipo", report.SplitPoints(agg.ByType))
	case ChartVehicleByState:
		err = report.RenderPie(&buf, "Veículos por Estado", report.CountPoints(agg.ByState))
	default:
		return nil, fmt.Errorf("%w: unknown chart dimension %q", xerrors.ErrInvalidInput, dimension)
	}
	if err != nil {
		s.logger.Error("vehicle chart rendering failed", zap.Error(err), zap.String("dimension", dimension))
		return nil, fmt.Errorf("%w: chart rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}

// AssetChart renders one PNG chart for the chosen grouping dimension.
func (s *ReportService) AssetChart(ctx context.Context, filters asset.ReportFilters, dimension string) ([]byte, error) {
	agg, err := s.AssetStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch dimension {
	case ChartAssetBySector:
		err = report.RenderPie(&buf, "Bens por Setor", report.SectorPoints(agg.BySector))
	case ChartAssetByState:
		err = report.RenderPie(&buf, "Bens por Estado de Conservação", report.CountPoints(agg.ByConservation))
	case ChartAssetByClass:
		err = report.RenderBar(&buf, "Bens por Classe", report.CountPoints(agg.ByClass))
	default:
		return nil, fmt.Errorf("%w: unknown chart dimension %q", xerrors.ErrInvalidInput, dimension)
	}
	if err != nil {
		s.logger.Error("asset chart rendering failed", zap.Error(err), zap.String("dimension", dimension))
		return nil, fmt.Errorf("%w: chart rendering failed", xerrors.ErrInternal)
	}

	return buf.Bytes(), nil
}
