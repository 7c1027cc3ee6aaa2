package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relation",
			Name:      "api_requests",
			Help:      "Time taken to process API requests",
			Buckets:   []float64{.005, .01, .025, .05, .075, .1, .15, .2, .25, .5, 1, 2.5, 5, 10, 15, 30},
		},
		[]string{"handler", "error"},
	)

	ResolveHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relation",
			Name:      "entitlement_resolutions",
			Help:      "Time taken to resolve a user pair entitlement",
			Buckets:   []float64{.005, .01, .025, .05, .075, .1, .15, .2, .25, .5, 1, 2.5, 5},
		},
		[]string{"error"},
	)

	GuardDenialsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relation",
			Name:      "guard_denials_total",
			Help:      "Number of interactions rejected by the blocking guard",
		},
		[]string{"reason"},
	)

	PromotionChecksCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relation",
			Name:      "promotion_checks_total",
			Help:      "Promotion eligibility outcomes by terminal rule",
		},
		[]string{"outcome"},
	)
)

func CollectRequestsMetric(handler string, err error, start time.Time) {
	RequestsHistogram.
		WithLabelValues(handler, errLabelValue(err)).
		Observe(time.Since(start).Seconds())
}

func CollectResolveMetric(err error, start time.Time) {
	ResolveHistogram.
		WithLabelValues(errLabelValue(err)).
		Observe(time.Since(start).Seconds())
}

func CollectGuardDenial(reason string) {
	GuardDenialsCounter.WithLabelValues(reason).Inc()
}

func CollectPromotionCheck(outcome string) {
	PromotionChecksCounter.WithLabelValues(outcome).Inc()
}

func errLabelValue(err error) string {
	if err != nil {
		return "true"
	}
	return "false"
}
