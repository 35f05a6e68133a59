package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
	"secad-service/internal/stats"
)

func sampleVehicles(n int) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, n)
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = vehicle.Vehicle{
			RegistrationNumber: int64(vehicle.RegistrationSeed + i),
			Plate:              fmt.Sprintf("ABC%04d", i),
			State:              "PR",
			Brand:              "VW",
			Model:              "Gol",
			VehicleType:        "Automóvel",
			City:               "Medianeira",
			InspectionDate:     base.AddDate(0, 0, i),
		}
		if i%2 == 0 {
			rel := base.AddDate(0, 1, i)
			out[i].ReleaseDate = &rel
		}
	}
	return out
}

func TestRenderVehiclePDF(t *testing.T) {
	vehicles := sampleVehicles(120) // enough rows to force table pagination
	var buf bytes.Buffer
	err := RenderVehiclePDF(&buf, VehicleReport{
		Filters:  vehicle.ReportFilters{City: "Medianeira", DateFrom: "2024-01-01", DateTo: "2024-12-31"},
		Vehicles: vehicles,
		Stats:    stats.ForVehicles(vehicles),
	})
	if err != nil {
		t.Fatalf("RenderVehiclePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF (first bytes %q)", buf.Bytes()[:8])
	}
}

func TestRenderAssetPDF(t *testing.T) {
	assets := []asset.Asset{
		{
			GeneralTag: "1001", LocalTag: "L-01", Description: "Mesa de escritório",
			AssetClass: asset.Classes[0], Sector: "Comando", ConservationState: "Bom",
			AcquisitionDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			NetValue:        350.75,
		},
	}
	var buf bytes.Buffer
	err := RenderAssetPDF(&buf, AssetReport{
		Sector: "Comando",
		Assets: assets,
		Stats:  stats.ForAssets(assets),
	})
	if err != nil {
		t.Fatalf("RenderAssetPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestRenderVehicleXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderVehicleXLSX(&buf, sampleVehicles(5)); err != nil {
		t.Fatalf("RenderVehicleXLSX: %v", err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatal("output does not look like a zip-based workbook")
	}
}

func TestChartLabelPercentagePerDataset(t *testing.T) {
	// The denominator is this chart's own dataset total.
	got := chartLabel("Novo", 3, 12)
	want := "Novo: 3 (25.0%)"
	if got != want {
		t.Errorf("chartLabel = %q, want %q", got, want)
	}
	if got := chartLabel("Vazio", 0, 0); got != "Vazio: 0 (0.0%)" {
		t.Errorf("zero-total label = %q", got)
	}
}

func TestRenderPieSkipsZeroBuckets(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPie(&buf, "Distribuição por Setor", []Datapoint{
		{Label: "Comando", Value: 3},
		{Label: "Cozinha", Value: 0},
		{Label: "Rotam", Value: 1},
	})
	if err != nil {
		t.Fatalf("RenderPie: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty PNG output")
	}
}

func TestRenderChartsProducePNG(t *testing.T) {
	points := []Datapoint{
		{Label: "Automóvel", Value: 5},
		{Label: "Motocicleta", Value: 2},
	}

	var pie bytes.Buffer
	if err := RenderPie(&pie, "Veículos por Tipo", points); err != nil {
		t.Fatalf("RenderPie: %v", err)
	}
	if !bytes.HasPrefix(pie.Bytes(), []byte("\x89PNG")) {
		t.Error("pie output is not a PNG")
	}

	var bar bytes.Buffer
	if err := RenderBar(&bar, "Veículos por Tipo", points); err != nil {
		t.Fatalf("RenderBar: %v", err)
	}
	if !bytes.HasPrefix(bar.Bytes(), []byte("\x89PNG")) {
		t.Error("bar output is not a PNG")
	}
}

func TestRenderPieEmptyDatasetFails(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPie(&buf, "vazio", nil); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{99.9, "R$ 99,90"},
		{-42.5, "-R$ 42,50"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
