// internal/service/chat/chat.go
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/event"
	"secad-service/internal/domain/vehicle"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotKey = "chat:snapshot"

const systemPrompt = "Você é um assistente da seção administrativa de uma companhia da Polícia Militar. " +
	"Responda em português do Brasil, com base exclusivamente nos dados fornecidos: " +
	"veículos apreendidos, bens patrimoniais e ordens de serviço. " +
	"Se a resposta não estiver nos dados, diga isso claramente."

// Completer is the inference call; satisfied by GroqClient.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Snapshot is the full read-only aggregation of the three collections that
// accompanies every question.
type Snapshot struct {
	Vehicles []vehicle.Vehicle `json:"vehicles"`
	Assets   []asset.Asset     `json:"assets"`
	Events   []event.Event     `json:"events"`
	TakenAt  time.Time         `json:"taken_at"`
}

type ChatService struct {
	vehicles vehicle.Repository
	assets   asset.Repository
	events   event.Repository
	cache    *redis.Client
	llm      Completer
	ttl      time.Duration
	logger   *zap.Logger
}

func NewChatService(
	vehicles vehicle.Repository,
	assets asset.Repository,
	events event.Repository,
	cache *redis.Client,
	llm Completer,
	ttl time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		vehicles: vehicles,
		assets:   assets,
		events:   events,
		cache:    cache,
		llm:      llm,
		ttl:      ttl,
		logger:   logger,
	}
}

// Ask answers one question over the current data snapshot. Each call is a
// single stateless turn; no transcript is kept server-side.
func (s *ChatService) Ask(ctx context.Context, question string) (string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	user := fmt.Sprintf("Dados atuais:\n%s\n\nPergunta: %s", data, question)

	answer, err := s.llm.Complete(ctx, systemPrompt, user)
	if err != nil {
		s.logger.Error("inference call failed", zap.Error(err))
		return "", fmt.Errorf("assistant unavailable: %w", err)
	}

	return answer, nil
}

// snapshot returns the cached aggregation when fresh, otherwise fetches the
// three collections concurrently. A failure on any of the three fails the
// whole snapshot; no partial result is used.
func (s *ChatService) snapshot(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, snapshotKey).Bytes(); err == nil {
			var snap Snapshot
			if err := json.Unmarshal(cached, &snap); err == nil {
				return &snap, nil
			}
		}
	}

	snap := &Snapshot{TakenAt: time.Now().UTC()}

	errs := make(chan error, 3)
	go func() {
		var err error
		snap.Vehicles, err = s.vehicles.List(ctx)
		errs <- err
	}()
	go func() {
		var err error
		snap.Assets, err = s.assets.List(ctx)
		errs <- err
	}()
	go func() {
		var err error
		snap.Events, err = s.events.List(ctx)
		errs <- err
	}()

	for i := 0; i < 3; i++ {
		if err := <-errs; err != nil {
			return nil, fmt.Errorf("failed to collect data snapshot: %w", err)
		}
	}

	if s.cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, snapshotKey, data, s.ttl).Err(); err != nil {
				s.logger.Warn("failed to cache snapshot", zap.Error(err))
			}
		}
	}

	return snap, nil
}

// Invalidate drops the cached snapshot. It backs the explicit refresh
// endpoint; routine staleness is bounded by the cache TTL instead.
func (s *ChatService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, snapshotKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate snapshot cache", zap.Error(err))
	}
}
