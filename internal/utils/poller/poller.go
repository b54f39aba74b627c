package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/types"
)

// Poller runs a poll method on a fixed interval until stopped. The first
// run happens immediately so a freshly started service settles and
// snapshots without waiting out a full interval.
type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) *types.Error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) *types.Error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Str("poller", p.name).Msgf("Starting poller with interval %s", p.interval)

	p.poll(ctx)
	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			log.Info().Str("poller", p.name).Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.pollMethod(ctx); err != nil {
		log.Error().Str("poller", p.name).Err(err).Msg("Error polling")
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
