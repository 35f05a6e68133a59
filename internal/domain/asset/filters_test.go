package asset

import (
	"testing"
	"time"

	"secad-service/internal/query"
)

func sampleAssets() []Asset {
	return []Asset{
		{ID: "a", GeneralTag: "100", Sector: "Comando", Description: "Mesa de Escritório", AssetClass: "Mobiliário em geral", ConservationState: "Novo", NetValue: 350, AcquisitionDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "b", GeneralTag: "200", Sector: "Cozinha", Description: "Geladeira", AssetClass: "Aparelhos e utensílios domésticos", ConservationState: "Bom", NetValue: 0, AcquisitionDate: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "c", GeneralTag: "300", Sector: "Comando", Description: "Cadeira giratória", AssetClass: "Mobiliário em geral", ConservationState: "Ruim", NetValue: 80, AcquisitionDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func evaluate(t *testing.T, f SearchFilters, records []Asset) []Asset {
	t.Helper()
	cons, preds, err := BuildQuery(f)
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	for _, c := range cons {
		preds = append(preds, PredicateFor(c))
	}
	return query.Apply(records, preds)
}

func ids(as []Asset) []string {
	out := make([]string, len(as))
	for i := range as {
		out[i] = as[i].ID
	}
	return out
}

func TestBuildQuerySectorAndClass(t *testing.T) {
	records := sampleAssets()

	got := evaluate(t, SearchFilters{Sector: "Comando"}, records)
	if len(got) != 2 {
		t.Fatalf("sector filter matched %v, want [a c]", ids(got))
	}

	got = evaluate(t, SearchFilters{Sector: "Comando", ConservationState: "Ruim"}, records)
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("combined filters matched %v, want [c]", ids(got))
	}
}

func TestBuildQueryDescriptionIsCaseInsensitive(t *testing.T) {
	got := evaluate(t, SearchFilters{Description: "escritório"}, sampleAssets())
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("description filter matched %v, want [a]", ids(got))
	}
}

func TestBuildQueryAcquisitionRange(t *testing.T) {
	got := evaluate(t, SearchFilters{AcquisitionFrom: "2024-01-01", AcquisitionTo: "2024-06-30"}, sampleAssets())
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("acquisition range matched %v, want [b]", ids(got))
	}
}

func TestBuildQueryValueBounds(t *testing.T) {
	records := sampleAssets()

	got := evaluate(t, SearchFilters{MinValue: "100"}, records)
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("min value matched %v, want [a]", ids(got))
	}

	got = evaluate(t, SearchFilters{MaxValue: "100"}, records)
	if len(got) != 2 {
		t.Errorf("max value matched %v, want [b c]", ids(got))
	}
}

func TestBuildQueryRejectsBadNumbers(t *testing.T) {
	cases := []SearchFilters{
		{MinValue: "abc"},
		{MaxValue: "1,5"},
		{AcquisitionFrom: "15/01/2023"},
	}
	for _, f := range cases {
		if _, _, err := BuildQuery(f); err == nil {
			t.Errorf("BuildQuery(%+v) should fail", f)
		}
	}
}

func TestBuildQueryAlwaysOrdersByCreation(t *testing.T) {
	cons, _, err := BuildQuery(SearchFilters{})
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	if len(cons) != 1 || cons[0].Op != query.OpOrderDesc || cons[0].Field != "created_at" {
		t.Errorf("constraints = %v, want a single created_at ordering", cons)
	}
}
