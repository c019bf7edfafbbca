package slack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/notifier"
	internalslack "github.com/courtsidehq/rotation/internal/notifier/slack"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackAPI struct {
	calls []fakeSlackCall
	err   error
}

type fakeSlackCall struct {
	channelID string
	options   []slack.MsgOption
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.calls = append(f.calls, fakeSlackCall{channelID: channelID, options: options})
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "12345.6789", nil
}

func TestSendRoundAnnouncement(t *testing.T) {
	api := &fakeSlackAPI{}
	metricsMock := metrics.NewMock()
	n := internalslack.NewNotifierWithAPI(api, "C123", metricsMock)

	lineups := []notifier.CourtLineup{
		{Court: 1, Team1: []string{"Alice", "Bob"}, Team2: []string{"Carol", "Dave"}},
		{Court: 2, Team1: []string{"Erin", "Frank"}, Team2: []string{"Grace", "Heidi"}},
	}

	err := n.SendRoundAnnouncement(3, lineups, false)
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "C123", api.calls[0].channelID)
	assert.Equal(t, 1, metricsMock.SlackNotifSent())
	assert.Equal(t, 0, metricsMock.SlackNotifFailed())
}

func TestSendRoundAnnouncement_DryRunSkipsAPI(t *testing.T) {
	api := &fakeSlackAPI{}
	n := internalslack.NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := n.SendRoundAnnouncement(1, nil, true)
	require.NoError(t, err)
	assert.Len(t, api.calls, 0, "dry run must not hit the Slack API")
}

func TestSendMatchResult_APIFailure(t *testing.T) {
	api := &fakeSlackAPI{err: errors.New("channel_not_found")}
	metricsMock := metrics.NewMock()
	n := internalslack.NewNotifierWithAPI(api, "C123", metricsMock)

	lineup := notifier.CourtLineup{Court: 1, Team1: []string{"Alice", "Bob"}, Team2: []string{"Carol", "Dave"}}
	err := n.SendMatchResult(2, lineup, false)
	assert.Error(t, err)
	assert.Equal(t, 1, metricsMock.SlackNotifFailed())
	assert.Equal(t, 0, metricsMock.SlackNotifSent())
}
