package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type StarRejectedReason string

var (
	StarRejectedExpiredWindow    StarRejectedReason = "validation_window_expired"
	StarRejectedBadSignature     StarRejectedReason = "signature_verification_failed"
	StarRejectedMalformedMessage StarRejectedReason = "parse_error"
	StarRejectedChainIntegrity   StarRejectedReason = "chain_integrity_error"
	StarRejectedUnknown          StarRejectedReason = "other"
)

type nodePromMetrics struct {
	nodeUpUnixSeconds  prometheus.Gauge
	blockHeight        prometheus.Gauge
	challengesIssued   prometheus.Counter
	starsAccepted      prometheus.Counter
	starsRejected      *prometheus.CounterVec
	chainSweepErrors   prometheus.Gauge
	chainSweepDuration prometheus.Histogram
	panicCount         prometheus.Counter
}

func newNodePromMetrics() *nodePromMetrics {
	return &nodePromMetrics{
		nodeUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "starnotary_node_up_timestamp_unix_seconds",
				Help: "Unix timestamp of the node",
			},
		),
		blockHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "starnotary_node_block_height",
				Help: "The current block height of the ledger",
			},
		),
		challengesIssued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starnotary_node_challenges_issued_count",
				Help: "The total number of ownership challenges handed out",
			},
		),
		starsAccepted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starnotary_node_stars_accepted_count",
				Help: "The total number of star claims sealed into the chain",
			},
		),
		starsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starnotary_node_stars_rejected_count",
				Help: "The total number of rejected star submissions",
			},
			[]string{"reason"},
		),
		chainSweepErrors: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "starnotary_node_chain_sweep_errors",
				Help: "Error count reported by the most recent full-chain validation sweep",
			},
		),
		chainSweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name: "starnotary_node_chain_sweep_duration_seconds",
				Help: "Duration in seconds of a full-chain validation sweep",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starnotary_node_panic_count",
				Help: "The total number of recovered panics in background goroutines",
			},
		),
	}
}

var metrics = newNodePromMetrics()

func MarkNodeUp() {
	metrics.nodeUpUnixSeconds.Set(float64(time.Now().Unix()))
}

func SetBlockHeight(height uint64) {
	metrics.blockHeight.Set(float64(height))
}

func IncreaseChallengesIssued() {
	metrics.challengesIssued.Inc()
}

func IncreaseStarsAccepted() {
	metrics.starsAccepted.Inc()
}

func IncreaseStarsRejected(reason StarRejectedReason) {
	metrics.starsRejected.WithLabelValues(string(reason)).Inc()
}

func RecordChainSweep(errorCount int, elapsed time.Duration) {
	metrics.chainSweepErrors.Set(float64(errorCount))
	metrics.chainSweepDuration.Observe(elapsed.Seconds())
}

func IncreasePanicCount() {
	metrics.panicCount.Inc()
}
