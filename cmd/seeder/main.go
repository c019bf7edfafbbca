package main

import (
	"flag"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/rotation/internal/config"
	"github.com/courtsidehq/rotation/internal/database"
	"github.com/courtsidehq/rotation/internal/engine"
	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/courtsidehq/rotation/internal/session"
)

// Seeds the database with a demo session: a full roster, one generated round
// and its completed matches, so the selector and optimizer have history to
// work against straight away.
func main() {
	courts := flag.Int("courts", 2, "number of courts for the demo session")
	names := flag.String("players", "Alice,Bob,Carol,Dave,Erin,Frank,Grace,Heidi,Ivan,Judy", "comma-separated player names")
	flag.Parse()

	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	sessions := session.New(db)
	players := roster.New(db)
	matchStore := matches.New(db)
	historyStore := history.New(db)
	eng := engine.New(players, matchStore, historyStore, metrics.NewMock())

	sess, err := sessions.Create(*courts)
	if err != nil {
		log.Fatalf("Failed to create session: %s", err)
	}
	log.Info("Created demo session", "session", sess.ID, "courts", sess.CourtCount)

	for _, name := range strings.Split(*names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		player, err := players.AddPlayer(sess.ID, name)
		if err != nil {
			log.Fatalf("Failed to add player %q: %s", name, err)
		}
		log.Info("Added player", "player", player.ID, "name", name)
	}

	roundNumber, err := matchStore.NextRoundNumber(sess.ID)
	if err != nil {
		log.Fatalf("Failed to derive round number: %s", err)
	}

	created, err := eng.CreateRound(sess.ID, roundNumber, sess.CourtCount)
	if err != nil {
		log.Fatalf("Failed to generate demo round: %s", err)
	}

	for _, match := range created {
		if err := eng.CompleteMatch(match.Match.ID); err != nil {
			log.Fatalf("Failed to complete demo match: %s", err)
		}
	}

	log.Info("Seeding complete", "session", sess.ID, "round", roundNumber, "matches", len(created))
}
