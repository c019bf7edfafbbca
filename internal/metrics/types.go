package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RoundsGenerated         prometheus.Counter
	RoundsInsufficient      prometheus.Counter
	MatchesCompleted        prometheus.Counter
	RoundGenerationDuration prometheus.Histogram
	OptimizerScore          prometheus.Histogram
	SlackNotifSent          prometheus.Counter
	SlackNotifFailed        prometheus.Counter
	StartupTimeSeconds      prometheus.Gauge
}
