package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRoundsGenerated()
	IncRoundsInsufficientPlayers()
	IncMatchesCompleted()
	ObserveRoundGenerationDuration(duration float64)
	ObserveOptimizerScore(score float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
