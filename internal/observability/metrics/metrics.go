package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                       sync.Once
	metricsRouter              *chi.Mux
	ledgerOpDurationHistogram  *prometheus.HistogramVec
	httpRequestDuration        *prometheus.HistogramVec
	queueSendErrorCounter      prometheus.Counter
	custodianTransferHistogram *prometheus.HistogramVec
	totalStakedGauge           prometheus.Gauge
	rewardDebtGauge            prometheus.Gauge
	rateAccumulatorGauge       prometheus.Gauge
	pendingWithdrawalsGauge    prometheus.Gauge
	availableRewardsGauge      prometheus.Gauge
	dbLatency                  *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	ledgerOpDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_op_duration_seconds",
			Help:    "Histogram of ledger operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"op", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming HTTP request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	custodianTransferHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "custodian_transfer_duration_seconds",
			Help:    "Histogram of custodian transfer durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"direction", "status"},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_staked",
			Help: "Sum of all staked principal currently tracked by the ledger",
		},
	)

	rewardDebtGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_reward_debt_total",
			Help: "Sum of unpaid reward debt across all stakers",
		},
	)

	rateAccumulatorGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_rate_accumulator",
			Help: "Current value of the global reward rate accumulator",
		},
	)

	pendingWithdrawalsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_pending_withdrawals",
			Help: "Number of withdrawal requests waiting out the cooling period",
		},
	)

	availableRewardsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_available_rewards",
			Help: "Custody balance in excess of staked principal, payable as rewards",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		ledgerOpDurationHistogram,
		httpRequestDuration,
		queueSendErrorCounter,
		custodianTransferHistogram,
		totalStakedGauge,
		rewardDebtGauge,
		rateAccumulatorGauge,
		pendingWithdrawalsGauge,
		availableRewardsGauge,
		dbLatency,
	)
}

func RecordLedgerOpDuration(d time.Duration, op string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	ledgerOpDurationHistogram.WithLabelValues(op, status.String()).Observe(d.Seconds())
}

func RecordCustodianTransfer(d time.Duration, direction string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	custodianTransferHistogram.WithLabelValues(direction, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordTotalStaked(total float64) {
	totalStakedGauge.Set(total)
}

func RecordRewardDebt(total float64) {
	rewardDebtGauge.Set(total)
}

func RecordRateAccumulator(rate float64) {
	rateAccumulatorGauge.Set(rate)
}

func RecordPendingWithdrawals(count int) {
	pendingWithdrawalsGauge.Set(float64(count))
}

func RecordAvailableRewards(amount float64) {
	availableRewardsGauge.Set(amount)
}

// StartHttpRequestDurationTimer starts a timer to measure incoming request duration.
func StartHttpRequestDurationTimer(method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDuration.WithLabelValues(
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
