package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// Emitter receives the observations a committed ledger operation produced.
// Emission happens after state commit; implementations must not call back
// into the ledger.
type Emitter interface {
	Emit(ctx context.Context, event types.Event)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Emit(context.Context, types.Event) {}

// Multi fans a single emission out to several sinks in order.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, event types.Event) {
	for _, emitter := range m {
		emitter.Emit(ctx, event)
	}
}

// Logger writes every event to the zerolog context logger.
type Logger struct{}

func (Logger) Emit(ctx context.Context, event types.Event) {
	log.Ctx(ctx).Info().
		Str("event_type", event.Type.String()).
		Int64("at", event.At).
		Interface("payload", event.Payload).
		Msg("ledger event")
}

// Recorder collects emitted events. Test double.
type Recorder struct {
	mu     sync.Mutex
	events []types.Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(_ context.Context, event types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns recorded events matching the given type.
func (r *Recorder) OfType(eventType types.EventTypes) []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []types.Event
	for _, ev := range r.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
