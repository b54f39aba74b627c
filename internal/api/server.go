package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/services"
)

// Server exposes the ledger operations over HTTP. Transport-level auth is
// deliberately out of scope; callers identify themselves in the request
// body and role checks happen inside the ledger.
type Server struct {
	cfg        *config.Config
	service    *services.Service
	httpServer *http.Server
}

func New(cfg *config.Config, service *services.Service) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
	}
	s.httpServer = &http.Server{
		Addr:         cfg.API.Address(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(traceMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/healthcheck", s.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/stake", s.handleStake)
		r.Post("/rewards/claim", s.handleClaimRewards)
		r.Get("/rewards/{address}", s.handleGetClaimable)
		r.Post("/donations", s.handleDonate)
		r.Post("/withdrawals", s.handleRequestWithdraw)
		r.Post("/withdrawals/{id}/finalize", s.handleFinalizeWithdraw)
		r.Get("/withdrawals/{id}", s.handleGetWithdrawal)
		r.Get("/stakes/{address}", s.handleGetStake)
		r.Get("/stakes/{address}/withdrawals", s.handleGetOwnerWithdrawals)
		r.Get("/state", s.handleGetState)
		r.Put("/params/min-stake", s.handleSetMinStake)
		r.Put("/params/annual-rate", s.handleSetAnnualRate)
		r.Post("/excess", s.handleWithdrawExcess)
	})

	return r
}

// Start serves until ctx is cancelled, then drains with a graceful
// shutdown.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting API server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.API.WriteTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
