package event

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"secad-service/internal/domain/event"
	xerrors "secad-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeRepo struct {
	events []event.Event
	nextID int
}

func (f *fakeRepo) Create(_ context.Context, e *event.Event) error {
	f.nextID++
	e.ID = fmt.Sprintf("evt-%d", f.nextID)
	e.Color = event.ColorFor(e.ID)
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*event.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			e := f.events[i]
			return &e, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeRepo) Update(_ context.Context, e *event.Event) error {
	for i := range f.events {
		if f.events[i].ID == e.ID {
			color := f.events[i].Color
			f.events[i] = *e
			f.events[i].Color = color
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]event.Event, error) {
	return append([]event.Event(nil), f.events...), nil
}

func newService(repo *fakeRepo) *EventService {
	return NewEventService(repo, zap.NewNop())
}

func validRequest() *event.CreateEventRequest {
	return &event.CreateEventRequest{
		Title:       "Escolta",
		OrderNumber: "OS-2024/031",
		Start:       "2024-07-01T08:00",
		End:         "2024-07-01T12:00",
		Location:    "Fórum de Medianeira",
	}
}

func TestCreateEventAssignsPaletteColor(t *testing.T) {
	svc := newService(&fakeRepo{})

	e, err := svc.CreateEvent(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	found := false
	for _, c := range event.Palette {
		if e.Color == c {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("color %q not in palette", e.Color)
	}
}

func TestCreateEventRejectsInvertedWindow(t *testing.T) {
	svc := newService(&fakeRepo{})

	req := validRequest()
	req.Start, req.End = req.End, req.Start

	if _, err := svc.CreateEvent(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateEventRejectsBadDatetime(t *testing.T) {
	svc := newService(&fakeRepo{})

	req := validRequest()
	req.Start = "01/07/2024 08:00"

	if _, err := svc.CreateEvent(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateEventKeepsColor(t *testing.T) {
	svc := newService(&fakeRepo{})
	e, _ := svc.CreateEvent(context.Background(), validRequest())

	title := "Escolta judicial"
	updated, err := svc.UpdateEvent(context.Background(), e.ID, &event.UpdateEventRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	if updated.Title != title {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Color != e.Color {
		t.Errorf("color changed on update: %q -> %q", e.Color, updated.Color)
	}
}

func TestColorForDeterministic(t *testing.T) {
	if event.ColorFor("some-id") != event.ColorFor("some-id") {
		t.Fatal("same id must map to the same color")
	}
}
