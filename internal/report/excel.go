package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
)

// RenderVehicleXLSX writes the itemized vehicle list as a spreadsheet:
// header row plus one row per record of the filtered set.
func RenderVehicleXLSX(w io.Writer, vehicles []vehicle.Vehicle) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Registro", "Placa", "UF", "BOU/TRV", "Marca", "Modelo", "Tipo",
		"Cidade", "Chave", "Data Vistoria", "Data Liberação", "Observação Chassi",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	row := 2
	for i := range vehicles {
		v := &vehicles[i]
		hasKey := "NÃO"
		if v.HasKey {
			hasKey = "SIM"
		}
		release := ""
		if v.ReleaseDate != nil {
			release = v.ReleaseDate.Format(dateLayout)
		}
		excelRow := []interface{}{
			v.RegistrationNumber,
			v.Plate,
			v.State,
			v.BouTrv,
			v.Brand,
			v.Model,
			v.VehicleType,
			v.City,
			hasKey,
			v.InspectionDate.Format(dateLayout),
			release,
			v.ChassisObservation,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// RenderAssetXLSX writes the itemized asset list as a spreadsheet.
func RenderAssetXLSX(w io.Writer, assets []asset.Asset) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Plaqueta Geral", "Plaqueta Local", "Descrição", "Classe", "Setor",
		"Estado de Conservação", "Data de Aquisição", "Incorporação",
		"Valor de Aquisição", "Valor de Avaliação", "Valor Líquido",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	row := 2
	for i := range assets {
		a := &assets[i]
		excelRow := []interface{}{
			a.GeneralTag,
			a.LocalTag,
			a.Description,
			a.AssetClass,
			a.Sector,
			a.ConservationState,
			a.AcquisitionDate.Format(dateLayout),
			a.IncorporationType,
			a.AcquisitionValue,
			a.EvaluationValue,
			a.NetValue,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
