package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/rotation/internal/engine"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/notifier"
	"github.com/courtsidehq/rotation/internal/pubsub"
	"github.com/courtsidehq/rotation/internal/roster"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListSessionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := s.Sessions.List()
		if err != nil {
			log.Error("Failed to list sessions", "error", err)
			http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
			return
		}
		writeJSON(w, sessions)
	}
}

func (s *Server) CreateSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts := 1
		if courtsStr := r.URL.Query().Get("courts"); courtsStr != "" {
			parsed, err := strconv.Atoi(courtsStr)
			if err != nil || parsed < 1 {
				http.Error(w, "Invalid 'courts' parameter", http.StatusBadRequest)
				return
			}
			courts = parsed
		}

		sess, err := s.Sessions.Create(courts)
		if err != nil {
			log.Error("Failed to create session", "error", err)
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}
		log.Info("Created session", "session", sess.ID, "courts", sess.CourtCount)
		writeJSON(w, sess)
	}
}

func (s *Server) DeleteSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		if sessionID == "" {
			http.Error(w, "Missing 'sessionID' parameter", http.StatusBadRequest)
			return
		}

		if err := s.Sessions.Delete(sessionID); err != nil {
			log.Error("Failed to delete session", "session", sessionID, "error", err)
			http.Error(w, "Failed to delete session", http.StatusInternalServerError)
			return
		}

		if err := s.PubSub.SendMessage(pubsub.EventSessionDeleted, sessionID); err != nil {
			log.Error("Failed to publish session deletion", "session", sessionID, "error", err)
		}

		log.Info("Deleted session", "session", sessionID)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Deleted session %s", sessionID)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		if sessionID == "" {
			http.Error(w, "Missing 'sessionID' parameter", http.StatusBadRequest)
			return
		}
		includeUnavailable := r.URL.Query().Get("all") == "true"

		players, err := s.Players.Players(sessionID, includeUnavailable)
		if err != nil {
			log.Error("Failed to list players", "session", sessionID, "error", err)
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}
		writeJSON(w, players)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		name := r.URL.Query().Get("name")
		if sessionID == "" || name == "" {
			http.Error(w, "Missing 'sessionID' or 'name' parameter", http.StatusBadRequest)
			return
		}

		player, err := s.Players.AddPlayer(sessionID, name)
		if err != nil {
			log.Error("Failed to add player", "session", sessionID, "name", name, "error", err)
			http.Error(w, "Failed to add player", http.StatusInternalServerError)
			return
		}
		log.Info("Added player", "session", sessionID, "player", player.ID, "name", name)
		writeJSON(w, player)
	}
}

func (s *Server) RemovePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing 'playerID' parameter", http.StatusBadRequest)
			return
		}

		if err := s.Players.RemovePlayer(playerID); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to remove player", "player", playerID, "error", err)
			http.Error(w, "Failed to remove player", http.StatusInternalServerError)
			return
		}
		log.Info("Removed player", "player", playerID)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Removed player %s", playerID)
	}
}

func (s *Server) RestorePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing 'playerID' parameter", http.StatusBadRequest)
			return
		}

		if err := s.Players.RestorePlayer(playerID); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to restore player", "player", playerID, "error", err)
			http.Error(w, "Failed to restore player", http.StatusInternalServerError)
			return
		}
		log.Info("Restored player", "player", playerID)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Restored player %s", playerID)
	}
}

func (s *Server) PlayerWeightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		if sessionID == "" {
			http.Error(w, "Missing 'sessionID' parameter", http.StatusBadRequest)
			return
		}
		includeUnavailable := r.URL.Query().Get("all") == "true"

		weights, err := s.Engine.ComputePlayerWeights(sessionID, includeUnavailable)
		if err != nil {
			log.Error("Failed to compute player weights", "session", sessionID, "error", err)
			http.Error(w, "Failed to compute player weights", http.StatusInternalServerError)
			return
		}
		writeJSON(w, weights)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		if sessionID == "" {
			http.Error(w, "Missing 'sessionID' parameter", http.StatusBadRequest)
			return
		}

		list, err := s.Matches.ListMatches(sessionID)
		if err != nil {
			log.Error("Failed to list matches", "session", sessionID, "error", err)
			http.Error(w, "Failed to list matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, list)
	}
}

func (s *Server) GenerateRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionID")
		if sessionID == "" {
			http.Error(w, "Missing 'sessionID' parameter", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		sess, err := s.Sessions.Get(sessionID)
		if err != nil {
			log.Error("Failed to load session", "session", sessionID, "error", err)
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}

		courts := sess.CourtCount
		if courtsStr := r.URL.Query().Get("courts"); courtsStr != "" {
			parsed, err := strconv.Atoi(courtsStr)
			if err != nil || parsed < 1 {
				http.Error(w, "Invalid 'courts' parameter", http.StatusBadRequest)
				return
			}
			courts = parsed
		}

		roundNumber, err := s.Matches.NextRoundNumber(sessionID)
		if err != nil {
			log.Error("Failed to derive round number", "session", sessionID, "error", err)
			http.Error(w, "Failed to derive round number", http.StatusInternalServerError)
			return
		}

		created, err := s.Engine.CreateRound(sessionID, roundNumber, courts)
		if err != nil {
			if errors.Is(err, engine.ErrInsufficientPlayers) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			log.Error("Failed to generate round", "session", sessionID, "round", roundNumber, "error", err)
			http.Error(w, "Failed to generate round", http.StatusInternalServerError)
			return
		}

		lineups, err := s.courtLineups(sessionID, created)
		if err != nil {
			log.Error("Failed to resolve player names for announcement", "session", sessionID, "error", err)
		} else {
			if err := s.Notifier.SendRoundAnnouncement(roundNumber, lineups, isDryRun); err != nil {
				log.Error("Failed to send round announcement", "session", sessionID, "round", roundNumber, "error", err)
			}
		}

		if err := s.PubSub.SendMessage(pubsub.EventRoundCreated, created); err != nil {
			log.Error("Failed to publish round creation", "session", sessionID, "round", roundNumber, "error", err)
		}

		writeJSON(w, created)
	}
}

func (s *Server) CompleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "Missing 'matchID' parameter", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		if err := s.Engine.CompleteMatch(matchID); err != nil {
			if errors.Is(err, matches.ErrMatchNotFound) {
				http.Error(w, "Match not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to complete match", "match", matchID, "error", err)
			http.Error(w, "Failed to complete match", http.StatusInternalServerError)
			return
		}

		match, err := s.Matches.GetMatch(matchID)
		if err != nil {
			log.Error("Failed to reload completed match", "match", matchID, "error", err)
			http.Error(w, "Failed to reload completed match", http.StatusInternalServerError)
			return
		}

		lineups, err := s.courtLineups(match.Match.SessionID, []matches.MatchWithPlayers{*match})
		if err != nil {
			log.Error("Failed to resolve player names for result", "match", matchID, "error", err)
		} else if len(lineups) == 1 {
			if err := s.Notifier.SendMatchResult(match.Match.RoundNumber, lineups[0], isDryRun); err != nil {
				log.Error("Failed to send match result", "match", matchID, "error", err)
			}
		}

		if err := s.PubSub.SendMessage(pubsub.EventMatchCompleted, match); err != nil {
			log.Error("Failed to publish match completion", "match", matchID, "error", err)
		}

		writeJSON(w, match)
	}
}

// courtLineups translates team assignments into player names for the
// notification layer. Court numbers follow the order matches were created in.
func (s *Server) courtLineups(sessionID string, list []matches.MatchWithPlayers) ([]notifier.CourtLineup, error) {
	players, err := s.Players.Players(sessionID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load session players: %w", err)
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	nameOf := func(playerID string) string {
		if name, ok := names[playerID]; ok {
			return name
		}
		return playerID
	}

	lineups := make([]notifier.CourtLineup, 0, len(list))
	for i, match := range list {
		lineup := notifier.CourtLineup{Court: i + 1}
		for _, mp := range match.Players {
			switch mp.Team {
			case 1:
				lineup.Team1 = append(lineup.Team1, nameOf(mp.PlayerID))
			case 2:
				lineup.Team2 = append(lineup.Team2, nameOf(mp.PlayerID))
			}
		}
		lineups = append(lineups, lineup)
	}
	return lineups, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
