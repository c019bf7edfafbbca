package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	sessionID string
	playerID  string
	matchID   string
	name      string
	courts    int
	all       bool
	dryRun    bool
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)

	sessionsCmd.AddCommand(sessionsCreateCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsCreateCmd.Flags().IntVar(&courts, "courts", 1, "Number of courts for the session")
	sessionsDeleteCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	rootCmd.AddCommand(sessionsCmd)

	playersCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	playersCmd.Flags().BoolVar(&all, "all", false, "Include players currently in a match")
	playersCmd.AddCommand(playersAddCmd)
	playersCmd.AddCommand(playersRemoveCmd)
	playersCmd.AddCommand(playersRestoreCmd)
	playersAddCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	playersAddCmd.Flags().StringVar(&name, "name", "", "The player's name")
	playersRemoveCmd.Flags().StringVar(&playerID, "player", "", "The player ID")
	playersRestoreCmd.Flags().StringVar(&playerID, "player", "", "The player ID")
	rootCmd.AddCommand(playersCmd)

	weightsCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	weightsCmd.Flags().BoolVar(&all, "all", false, "Include players currently in a match")
	rootCmd.AddCommand(weightsCmd)

	matchesCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	matchesCmd.AddCommand(completeCmd)
	completeCmd.Flags().StringVar(&matchID, "match", "", "The match ID")
	completeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip outbound notifications")
	rootCmd.AddCommand(matchesCmd)

	generateCmd.Flags().StringVar(&sessionID, "session", "", "The session ID")
	generateCmd.Flags().IntVar(&courts, "courts", 0, "Override the session's court count")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip outbound notifications")
	rootCmd.AddCommand(generateCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/metrics", nil)
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/sessions", nil)
	},
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/sessions/create", url.Values{"courts": {fmt.Sprint(courts)}})
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/sessions/delete", url.Values{"sessionID": {sessionID}})
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List a session's players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/players", sessionParams())
	},
}

var playersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a player to a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/players/add", url.Values{"sessionID": {sessionID}, "name": {name}})
	},
}

var playersRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a player from its session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/players/remove", url.Values{"playerID": {playerID}})
	},
}

var playersRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a removed player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/players/restore", url.Values{"playerID": {playerID}})
	},
}

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show a session's player weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/weights", sessionParams())
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List a session's matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("/matches", url.Values{"sessionID": {sessionID}})
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete an active match",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{"matchID": {matchID}}
		if dryRun {
			params.Set("dry_run", "true")
		}
		return performRequest("/matches/complete", params)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the next round for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{"sessionID": {sessionID}}
		if courts > 0 {
			params.Set("courts", fmt.Sprint(courts))
		}
		if dryRun {
			params.Set("dry_run", "true")
		}
		return performRequest("/rounds/generate", params)
	},
}

func sessionParams() url.Values {
	params := url.Values{"sessionID": {sessionID}}
	if all {
		params.Set("all", "true")
	}
	return params
}

func performRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	resp, err := http.Get(target)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
