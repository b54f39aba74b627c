package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/api"
	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/db"
	dbmodel "github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/events"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
	"github.com/custodia-io/reward-ledger/internal/observability/tracing"
	"github.com/custodia-io/reward-ledger/internal/queue"
	"github.com/custodia-io/reward-ledger/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the reward ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer qm.Shutdown()

	// In-memory custody; a production deployment swaps in an adapter to
	// the real custody backend behind the same interface.
	var tokenCustodian custodian.TokenCustodian = custodian.NewMemoryCustodian()
	tokenCustodian = custodian.NewCustodianWithMetrics(tokenCustodian)
	gate := access.NewStaticGate(cfg.Access.Admins, cfg.Access.Managers)

	emitter := events.Multi{
		events.Logger{},
		services.NewEventSink(dbClient, qm),
	}

	ledgerState, err := services.LoadLedger(ctx, cfg, dbClient, tokenCustodian, gate, emitter)
	if err != nil {
		log.Fatal().Err(err).Msg("error while loading ledger state")
	}

	service := services.NewService(cfg, dbClient, ledgerState, tokenCustodian, qm)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	go service.RunBackgroundLoops(ctx)

	server := api.New(cfg, service)
	return server.Start(ctx)
}
