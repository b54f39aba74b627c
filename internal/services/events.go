package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/db"
	"github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/events"
	"github.com/custodia-io/reward-ledger/internal/observability/tracing"
	"github.com/custodia-io/reward-ledger/internal/queue"
	"github.com/custodia-io/reward-ledger/internal/types"
)

// EventSink records every ledger event in mongo and publishes it to the
// queue. Both are best-effort: the ledger state already committed by the
// time events are emitted, so failures are logged and never surfaced.
type EventSink struct {
	db           db.DbInterface
	queueManager *queue.QueueManager
}

func NewEventSink(database db.DbInterface, qm *queue.QueueManager) *EventSink {
	return &EventSink{
		db:           database,
		queueManager: qm,
	}
}

var _ events.Emitter = (*EventSink)(nil)

func (s *EventSink) Emit(ctx context.Context, event types.Event) {
	doc := &model.EventDocument{
		Type:    event.Type.String(),
		At:      event.At,
		TraceID: tracing.TraceID(ctx),
		Payload: documentPayload(event.Payload),
	}
	if err := s.db.SaveEvent(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("event_type", event.Type.String()).
			Msg("Failed to persist ledger event")
	}

	if s.queueManager == nil {
		return
	}
	if err := s.queueManager.SendLedgerEvent(ctx, &event); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("event_type", event.Type.String()).
			Msg("Failed to publish ledger event")
	}
}

// documentPayload flattens a typed payload into a plain map through its
// JSON form, so big amounts land in mongo as decimal strings.
func documentPayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil
	}
	return flat
}
