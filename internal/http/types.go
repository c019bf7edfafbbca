package http

import (
	"net/http"

	"github.com/courtsidehq/rotation/internal/config"
	"github.com/courtsidehq/rotation/internal/engine"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/notifier"
	"github.com/courtsidehq/rotation/internal/pubsub"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/courtsidehq/rotation/internal/session"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	Sessions       session.SessionStore
	Players        roster.PlayerStore
	Matches        matches.MatchStore
	Engine         *engine.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	PubSub         pubsub.PubSubClient
	Cfg            config.Config
	Router         *http.ServeMux
}
