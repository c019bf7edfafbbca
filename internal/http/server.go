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

// NewServer creates a new Server with all its dependencies wired up
// and its routes registered.
func NewServer(
	sessions session.SessionStore,
	players roster.PlayerStore,
	matchStore matches.MatchStore,
	eng *engine.Engine,
	notif notifier.Notifier,
	ps pubsub.PubSubClient,
	m metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
) *Server {
	s := &Server{
		Sessions:       sessions,
		Players:        players,
		Matches:        matchStore,
		Engine:         eng,
		Notifier:       notif,
		PubSub:         ps,
		Metrics:        m,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/metrics", s.MetricsHandler)

	s.Router.Handle("/sessions", Chain(s.ListSessionsHandler(), paramsMiddleware))
	s.Router.Handle("/sessions/create", Chain(s.CreateSessionHandler(), paramsMiddleware))
	s.Router.Handle("/sessions/delete", Chain(s.DeleteSessionHandler(), paramsMiddleware))

	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/add", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/remove", Chain(s.RemovePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/restore", Chain(s.RestorePlayerHandler(), paramsMiddleware))

	s.Router.Handle("/weights", Chain(s.PlayerWeightsHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/rounds/generate", Chain(s.GenerateRoundHandler(), paramsMiddleware))
	s.Router.Handle("/matches/complete", Chain(s.CompleteMatchHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
