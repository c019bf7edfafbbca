package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendRoundAnnouncement posts the lineups of a freshly generated round.
func (s *Notifier) SendRoundAnnouncement(roundNumber int, lineups []notifier.CourtLineup, dryRun bool) error {
	msg := s.formatRoundAnnouncement(roundNumber, lineups)
	return s.sendMessage(msg, dryRun)
}

// SendMatchResult posts that a match finished.
func (s *Notifier) SendMatchResult(roundNumber int, lineup notifier.CourtLineup, dryRun bool) error {
	msg := s.formatMatchResult(roundNumber, lineup)
	return s.sendMessage(msg, dryRun)
}

// formatRoundAnnouncement creates the Slack message for a new round using Block Kit.
func (s *Notifier) formatRoundAnnouncement(roundNumber int, lineups []notifier.CourtLineup) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏓 Round %d is up! 🏓", roundNumber), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, lineup := range lineups {
		courtText := fmt.Sprintf("*Court %d*\n%s  vs  %s",
			lineup.Court,
			strings.Join(lineup.Team1, " & "),
			strings.Join(lineup.Team2, " & "),
		)
		section := slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", courtText, false, false), nil, nil)
		blocks = append(blocks, section)
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("mrkdwn", "Tap your court and warm up. Everyone else: next round is yours.", false, false),
	))

	msg := slack.NewBlockMessage(blocks...)
	return msg
}

// formatMatchResult creates the Slack message for a finished match.
func (s *Notifier) formatMatchResult(roundNumber int, lineup notifier.CourtLineup) slack.Message {
	text := fmt.Sprintf("*Match finished* (round %d)\n%s  vs  %s\nAll four players are back in the rotation.",
		roundNumber,
		strings.Join(lineup.Team1, " & "),
		strings.Join(lineup.Team2, " & "),
	)

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	}
	return slack.NewBlockMessage(blocks...)
}
