package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FactoringMetrics holds all Prometheus metrics for the Factoring module
type FactoringMetrics struct {
	ProblemsSubmitted prometheus.Counter
	ProblemsResolved  prometheus.Counter
	OpenProblems      prometheus.Gauge
	RewardsEscrowed   *prometheus.CounterVec
	RewardsSettled    *prometheus.CounterVec
	RejectedAnswers   *prometheus.CounterVec
}

var (
	factoringMetricsOnce sync.Once
	factoringMetrics     *FactoringMetrics
)

// NewFactoringMetrics creates and registers Factoring metrics (singleton pattern)
func NewFactoringMetrics() *FactoringMetrics {
	factoringMetricsOnce.Do(func() {
		factoringMetrics = &FactoringMetrics{
			ProblemsSubmitted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "problems_submitted_total",
					Help:      "Total factorization problems submitted",
				},
			),
			ProblemsResolved: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "problems_resolved_total",
					Help:      "Total factorization problems resolved",
				},
			),
			OpenProblems: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "open_problems",
					Help:      "Currently open (unresolved) problems",
				},
			),
			RewardsEscrowed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "rewards_escrowed_total",
					Help:      "Total reward amount moved into escrow",
				},
				[]string{"denom"},
			),
			RewardsSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "rewards_settled_total",
					Help:      "Total reward amount paid out at settlement",
				},
				[]string{"denom", "recipient"},
			),
			RejectedAnswers: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "factor",
					Subsystem: "factoring",
					Name:      "rejected_answers_total",
					Help:      "Resolution attempts rejected by verification",
				},
				[]string{"reason"},
			),
		}
	})
	return factoringMetrics
}

// GetFactoringMetrics returns the singleton Factoring metrics instance
func GetFactoringMetrics() *FactoringMetrics {
	if factoringMetrics == nil {
		return NewFactoringMetrics()
	}
	return factoringMetrics
}

// floatAmount converts a token amount to float64 for metric reporting only.
// Precision loss above 2^53 is acceptable here.
func floatAmount(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
