package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"secad-service/internal/domain/asset"
	xerrors "secad-service/internal/pkg/errors"
	"secad-service/internal/query"

	"go.uber.org/zap"
)

type fakeRepo struct {
	assets []asset.Asset
	nextID int
}

func (f *fakeRepo) Create(_ context.Context, a *asset.Asset) error {
	f.nextID++
	a.ID = string(rune('A' + f.nextID))
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.assets = append(f.assets, *a)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*asset.Asset, error) {
	for i := range f.assets {
		if f.assets[i].ID == id {
			a := f.assets[i]
			a.TransferHistory = append([]asset.Transfer(nil), a.TransferHistory...)
			return &a, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeRepo) Update(_ context.Context, a *asset.Asset) error {
	for i := range f.assets {
		if f.assets[i].ID == a.ID {
			// Sector and history only change through Transfer.
			sector, history := f.assets[i].Sector, f.assets[i].TransferHistory
			f.assets[i] = *a
			f.assets[i].Sector = sector
			f.assets[i].TransferHistory = history
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]asset.Asset, error) {
	return append([]asset.Asset(nil), f.assets...), nil
}

func (f *fakeRepo) Search(_ context.Context, cons []query.Constraint) ([]asset.Asset, error) {
	out := append([]asset.Asset(nil), f.assets...)
	for _, c := range cons {
		out = query.Apply(out, []query.Predicate[asset.Asset]{asset.PredicateFor(c)})
	}
	return out, nil
}

func (f *fakeRepo) Transfer(_ context.Context, id string, entry asset.Transfer, _ time.Time) error {
	for i := range f.assets {
		if f.assets[i].ID == id {
			f.assets[i].Sector = entry.ToSector
			f.assets[i].TransferHistory = append(f.assets[i].TransferHistory, entry)
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (f *fakeRepo) DistinctDescriptions(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, a := range f.assets {
		if !seen[a.Description] {
			seen[a.Description] = true
			out = append(out, a.Description)
		}
	}
	return out, nil
}

func newService(repo *fakeRepo) *AssetService {
	return NewAssetService(repo, zap.NewNop())
}

func validRequest() *asset.CreateAssetRequest {
	return &asset.CreateAssetRequest{
		Sector:            "Comando",
		GeneralTag:        "1001",
		LocalTag:          "L-01",
		Description:       "Mesa de escritório",
		AssetClass:        asset.Classes[0],
		ConservationState: "Bom",
		AcquisitionDate:   "2022-06-01",
		IncorporationType: "Doação",
		AcquisitionValue:  300,
		EvaluationValue:   280,
		NetValue:          280,
	}
}

func TestCreateAsset(t *testing.T) {
	svc := newService(&fakeRepo{})

	a, err := svc.CreateAsset(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if a.Sector != "Comando" {
		t.Errorf("sector = %q", a.Sector)
	}
	if len(a.TransferHistory) != 0 {
		t.Errorf("new asset should start with empty history, got %d entries", len(a.TransferHistory))
	}
}

func TestCreateAssetRejectsUnknownEnums(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*asset.CreateAssetRequest)
	}{
		{"sector", func(r *asset.CreateAssetRequest) { r.Sector = "Porão" }},
		{"class", func(r *asset.CreateAssetRequest) { r.AssetClass = "Naves" }},
		{"conservation", func(r *asset.CreateAssetRequest) { r.ConservationState = "Péssimo" }},
		{"incorporation", func(r *asset.CreateAssetRequest) { r.IncorporationType = "Empréstimo" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(&fakeRepo{})
			req := validRequest()
			tc.mutate(req)
			if _, err := svc.CreateAsset(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateAssetRejectsNegativeValues(t *testing.T) {
	svc := newService(&fakeRepo{})
	req := validRequest()
	req.NetValue = -1

	if _, err := svc.CreateAsset(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTransferAsset(t *testing.T) {
	svc := newService(&fakeRepo{})
	a, err := svc.CreateAsset(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	moved, err := svc.TransferAsset(context.Background(), a.ID, &asset.TransferRequest{
		ToSector: "Cozinha",
		Reason:   "reorganização",
	})
	if err != nil {
		t.Fatalf("TransferAsset: %v", err)
	}

	if moved.Sector != "Cozinha" {
		t.Errorf("sector = %q, want Cozinha", moved.Sector)
	}
	if len(moved.TransferHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(moved.TransferHistory))
	}
	entry := moved.TransferHistory[0]
	if entry.FromSector != "Comando" || entry.ToSector != "Cozinha" || entry.Reason != "reorganização" {
		t.Errorf("history entry = %+v", entry)
	}
}

func TestTransferAssetRejectsSameSector(t *testing.T) {
	svc := newService(&fakeRepo{})
	a, _ := svc.CreateAsset(context.Background(), validRequest())

	_, err := svc.TransferAsset(context.Background(), a.ID, &asset.TransferRequest{ToSector: "Comando"})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTransferAssetRejectsUnknownSector(t *testing.T) {
	svc := newService(&fakeRepo{})
	a, _ := svc.CreateAsset(context.Background(), validRequest())

	_, err := svc.TransferAsset(context.Background(), a.ID, &asset.TransferRequest{ToSector: "Sótão"})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRemoveAssetMovesToRemovedSector(t *testing.T) {
	svc := newService(&fakeRepo{})
	a, _ := svc.CreateAsset(context.Background(), validRequest())

	removed, err := svc.RemoveAsset(context.Background(), a.ID, "inservível")
	if err != nil {
		t.Fatalf("RemoveAsset: %v", err)
	}
	if removed.Sector != asset.RemovedSector {
		t.Errorf("sector = %q, want %q", removed.Sector, asset.RemovedSector)
	}
	if len(removed.TransferHistory) != 1 || removed.TransferHistory[0].ToSector != asset.RemovedSector {
		t.Errorf("history = %+v", removed.TransferHistory)
	}
}

func TestSearchAssetsBySectorAndValue(t *testing.T) {
	repo := &fakeRepo{assets: []asset.Asset{
		{ID: "1", Sector: "Comando", NetValue: 100},
		{ID: "2", Sector: "Comando", NetValue: 900},
		{ID: "3", Sector: "Cozinha", NetValue: 500},
	}}
	svc := newService(repo)

	res, err := svc.SearchAssets(context.Background(), asset.SearchFilters{Sector: "Comando", MinValue: "200"}, 1, 30)
	if err != nil {
		t.Fatalf("SearchAssets: %v", err)
	}
	if res.Total != 1 || res.Assets[0].ID != "2" {
		t.Errorf("got total=%d, want the single high-value Comando asset", res.Total)
	}
}
