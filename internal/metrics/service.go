package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RoundsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotation_rounds_generated_total",
			Help: "The total number of rounds successfully generated.",
		}),
		RoundsInsufficient: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotation_rounds_insufficient_players_total",
			Help: "The total number of round generations rejected for lack of eligible players.",
		}),
		MatchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotation_matches_completed_total",
			Help: "The total number of matches completed.",
		}),
		RoundGenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rotation_round_generation_duration_seconds",
			Help:    "The duration of individual round generations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		OptimizerScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rotation_optimizer_score",
			Help:    "The pairing score of the chosen round assignment (0 means no repeats).",
			Buckets: []float64{-64, -32, -16, -8, -4, -2, -1, 0},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotation_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotation_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotation_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RoundsGenerated,
		s.RoundsInsufficient,
		s.MatchesCompleted,
		s.RoundGenerationDuration,
		s.OptimizerScore,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRoundsGenerated() {
	s.RoundsGenerated.Inc()
}

func (s *Service) IncRoundsInsufficientPlayers() {
	s.RoundsInsufficient.Inc()
}

func (s *Service) IncMatchesCompleted() {
	s.MatchesCompleted.Inc()
}

func (s *Service) ObserveRoundGenerationDuration(duration float64) {
	s.RoundGenerationDuration.Observe(duration)
}

func (s *Service) ObserveOptimizerScore(score float64) {
	s.OptimizerScore.Observe(score)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
