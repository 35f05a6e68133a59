package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/event"
	"secad-service/internal/domain/vehicle"
	"secad-service/internal/query"

	"go.uber.org/zap"
)

type fakeVehicleRepo struct {
	vehicles []vehicle.Vehicle
	err      error
}

func (f *fakeVehicleRepo) Create(context.Context, *vehicle.Vehicle) error { return nil }
func (f *fakeVehicleRepo) FindByID(context.Context, string) (*vehicle.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicleRepo) Update(context.Context, *vehicle.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Delete(context.Context, string) error           { return nil }
func (f *fakeVehicleRepo) List(context.Context) ([]vehicle.Vehicle, error) {
	return f.vehicles, f.err
}
func (f *fakeVehicleRepo) Search(context.Context, []query.Constraint) ([]vehicle.Vehicle, error) {
	return f.vehicles, f.err
}
func (f *fakeVehicleRepo) MaxRegistrationNumber(context.Context) (int64, bool, error) {
	return 0, false, nil
}
func (f *fakeVehicleRepo) SetReleaseDate(context.Context, string, *time.Time) error { return nil }

type fakeAssetRepo struct {
	assets []asset.Asset
	err    error
}

func (f *fakeAssetRepo) Create(context.Context, *asset.Asset) error { return nil }
func (f *fakeAssetRepo) FindByID(context.Context, string) (*asset.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) Update(context.Context, *asset.Asset) error       { return nil }
func (f *fakeAssetRepo) List(context.Context) ([]asset.Asset, error)      { return f.assets, f.err }
func (f *fakeAssetRepo) Search(context.Context, []query.Constraint) ([]asset.Asset, error) {
	return f.assets, f.err
}
func (f *fakeAssetRepo) Transfer(context.Context, string, asset.Transfer, time.Time) error {
	return nil
}
func (f *fakeAssetRepo) DistinctDescriptions(context.Context) ([]string, error) { return nil, nil }

type fakeEventRepo struct {
	events []event.Event
	err    error
}

func (f *fakeEventRepo) Create(context.Context, *event.Event) error { return nil }
func (f *fakeEventRepo) FindByID(context.Context, string) (*event.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) Update(context.Context, *event.Event) error  { return nil }
func (f *fakeEventRepo) Delete(context.Context, string) error        { return nil }
func (f *fakeEventRepo) List(context.Context) ([]event.Event, error) { return f.events, f.err }

type fakeCompleter struct {
	lastSystem string
	lastUser   string
	reply      string
	err        error
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

func newService(v *fakeVehicleRepo, a *fakeAssetRepo, e *fakeEventRepo, llm Completer) *ChatService {
	return NewChatService(v, a, e, nil, llm, time.Minute, zap.NewNop())
}

func TestAskForwardsSnapshotAndQuestion(t *testing.T) {
	v := &fakeVehicleRepo{vehicles: []vehicle.Vehicle{{ID: "v1", Plate: "ABC1234"}}}
	a := &fakeAssetRepo{assets: []asset.Asset{{ID: "a1", Description: "Mesa"}}}
	e := &fakeEventRepo{events: []event.Event{{ID: "e1", Title: "Escolta"}}}
	llm := &fakeCompleter{reply: "há 1 veículo"}

	svc := newService(v, a, e, llm)

	answer, err := svc.Ask(context.Background(), "quantos veículos?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "há 1 veículo" {
		t.Errorf("answer = %q", answer)
	}

	for _, want := range []string{"ABC1234", "Mesa", "Escolta", "quantos veículos?"} {
		if !strings.Contains(llm.lastUser, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if llm.lastSystem == "" {
		t.Error("system prompt was empty")
	}
}

func TestAskFailsWhenAnyFetchFails(t *testing.T) {
	v := &fakeVehicleRepo{}
	a := &fakeAssetRepo{err: errors.New("store down")}
	e := &fakeEventRepo{}
	llm := &fakeCompleter{reply: "should not be called"}

	svc := newService(v, a, e, llm)

	if _, err := svc.Ask(context.Background(), "pergunta"); err == nil {
		t.Fatal("expected snapshot failure to fail the whole call")
	}
	if llm.lastUser != "" {
		t.Error("inference must not run on a partial snapshot")
	}
}

func TestAskSurfacesInferenceFailure(t *testing.T) {
	svc := newService(&fakeVehicleRepo{}, &fakeAssetRepo{}, &fakeEventRepo{}, &fakeCompleter{err: errors.New("quota")})

	if _, err := svc.Ask(context.Background(), "pergunta"); err == nil {
		t.Fatal("expected inference error to propagate")
	}
}

func TestInvalidateWithoutCache(t *testing.T) {
	v := &fakeVehicleRepo{}
	a := &fakeAssetRepo{}
	e := &fakeEventRepo{}
	svc := newService(v, a, e, &fakeCompleter{reply: "ok"})

	// Refresh is a no-op when no cache is configured.
	svc.Invalidate(context.Background())

	if _, err := svc.Ask(context.Background(), "pergunta"); err != nil {
		t.Fatalf("Ask after Invalidate: %v", err)
	}
}

func TestGroqClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"content":"resposta"}}]}`)
	}))
	defer srv.Close()

	client, err := NewGroqClient(srv.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("NewGroqClient: %v", err)
	}

	out, err := client.Complete(context.Background(), "sistema", "pergunta")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "resposta" {
		t.Errorf("out = %q", out)
	}
}

func TestGroqClientRejectsEmptyKey(t *testing.T) {
	if _, err := NewGroqClient("http://localhost", "", "model"); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestGroqClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, _ := NewGroqClient(srv.URL, "test-key", "test-model")
	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}
