package stats

import (
	"testing"
	"time"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestVehicleStatsByCityScenario(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{City: "Medianeira", VehicleType: "Automóvel", State: "PR", ReleaseDate: datePtr("2024-03-01")},
		{City: "Medianeira", VehicleType: "Motocicleta", State: "PR"},
		{City: "SMI", VehicleType: "Automóvel", State: "SC", ReleaseDate: datePtr("2024-03-02")},
	}

	// Filter by city the way the report does, then aggregate.
	var filtered []vehicle.Vehicle
	for _, v := range vehicles {
		if v.City == "Medianeira" {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) != 2 {
		t.Fatalf("filtered = %d records, want 2", len(filtered))
	}

	s := ForVehicles(filtered)
	var medianeira *ReleaseSplit
	for i := range s.ByCity {
		if s.ByCity[i].Key == "Medianeira" {
			medianeira = &s.ByCity[i]
		}
	}
	if medianeira == nil {
		t.Fatal("Medianeira bucket missing")
	}
	if medianeira.Total != 2 || medianeira.Released != 1 || medianeira.NotReleased != 1 {
		t.Errorf("Medianeira = %+v, want total 2, released 1, not released 1", *medianeira)
	}
}

func TestVehicleStatsCountsPartition(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{City: "Medianeira", VehicleType: "Automóvel", State: "PR", HasKey: true},
		{City: "SMI", VehicleType: "Caminhão", State: "PR"},
		{City: "Missal", VehicleType: "Automóvel", State: "SP", ReleaseDate: datePtr("2024-01-10")},
		{City: "Medianeira", VehicleType: "Reboque", State: "--", HasKey: true},
		{City: "Cascavel", VehicleType: "Automóvel", State: "PR"}, // off-enumeration city
	}
	s := ForVehicles(vehicles)

	if s.Total != len(vehicles) {
		t.Fatalf("Total = %d, want %d", s.Total, len(vehicles))
	}
	if s.Released+s.NotReleased != s.Total {
		t.Errorf("released split %d+%d != total %d", s.Released, s.NotReleased, s.Total)
	}
	if s.ByKey.Yes+s.ByKey.No != s.Total {
		t.Errorf("key split %d+%d != total %d", s.ByKey.Yes, s.ByKey.No, s.Total)
	}

	// Every record lands in exactly one bucket per dimension.
	sumCity := 0
	for _, b := range s.ByCity {
		sumCity += b.Total
	}
	if sumCity != s.Total {
		t.Errorf("by-city sum = %d, want %d", sumCity, s.Total)
	}
	sumState := 0
	for _, b := range s.ByState {
		sumState += b.Count
	}
	if sumState != s.Total {
		t.Errorf("by-state sum = %d, want %d", sumState, s.Total)
	}
}

func TestVehicleStatsDeterministicOrder(t *testing.T) {
	s := ForVehicles(nil)

	if len(s.ByCity) != len(vehicle.Cities) {
		t.Fatalf("ByCity has %d buckets, want canonical %d", len(s.ByCity), len(vehicle.Cities))
	}
	for i, c := range vehicle.Cities {
		if s.ByCity[i].Key != c {
			t.Errorf("ByCity[%d] = %q, want %q", i, s.ByCity[i].Key, c)
		}
		if s.ByCity[i].Total != 0 {
			t.Errorf("empty set bucket %q has count %d", c, s.ByCity[i].Total)
		}
	}
}

func TestVehicleStatsUnknownValueBucketed(t *testing.T) {
	s := ForVehicles([]vehicle.Vehicle{{City: "Foz do Iguaçu", VehicleType: "Automóvel", State: "PR"}})

	last := s.ByCity[len(s.ByCity)-1]
	if last.Key != "Foz do Iguaçu" || last.Total != 1 {
		t.Errorf("unknown city bucket = %+v, want appended with count 1", last)
	}
}

func TestAssetStats(t *testing.T) {
	assets := []asset.Asset{
		{Sector: "Comando", AssetClass: asset.Classes[0], ConservationState: "Novo", NetValue: 100.50, AcquisitionDate: date("2023-05-01")},
		{Sector: "Comando", AssetClass: asset.Classes[2], ConservationState: "Bom", NetValue: 49.50, AcquisitionDate: date("2023-06-01")},
		{Sector: "Cozinha", AssetClass: asset.Classes[0], ConservationState: "Novo", NetValue: 200, AcquisitionDate: date("2024-01-01")},
	}
	s := ForAssets(assets)

	if s.Total != 3 {
		t.Fatalf("Total = %d, want 3", s.Total)
	}
	if s.TotalValue != 350 {
		t.Errorf("TotalValue = %v, want 350", s.TotalValue)
	}

	var comando *ValueBucket
	for i := range s.BySector {
		if s.BySector[i].Key == "Comando" {
			comando = &s.BySector[i]
		}
	}
	if comando == nil || comando.Count != 2 || comando.Value != 150 {
		t.Errorf("Comando bucket = %+v, want count 2 value 150", comando)
	}

	sumClass := 0
	for _, b := range s.ByClass {
		sumClass += b.Count
	}
	if sumClass != s.Total {
		t.Errorf("by-class sum = %d, want %d", sumClass, s.Total)
	}
}
