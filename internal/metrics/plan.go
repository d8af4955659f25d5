package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plansGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "prepplan",
			Subsystem: "core",
			Name:      "plans_generated_total",
			Help:      "Total number of generated interview plans.",
		},
		[]string{"locale", "category"},
	)

	planGenerationFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "prepplan",
			Subsystem: "core",
			Name:      "plan_generation_failed_total",
			Help:      "Total number of failed plan generations.",
		},
	)

	premiumUnlockedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "prepplan",
			Subsystem: "core",
			Name:      "premium_unlocked_total",
			Help:      "Total number of premium content unlocks.",
		},
	)
)

// PlanGenerated records one successful composition.
func PlanGenerated(locale, category string) {
	plansGeneratedTotal.WithLabelValues(locale, category).Inc()
}

// PlanGenerationFailed records one composition failure.
func PlanGenerationFailed() {
	planGenerationFailedTotal.Inc()
}

// PremiumUnlocked records one premium unlock.
func PremiumUnlocked() {
	premiumUnlockedTotal.Inc()
}
