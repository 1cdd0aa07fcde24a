package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Sagynai/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateScoreCompletesMatch(t *testing.T) {
	matchRepo := newFakeMatchRepo(models.Match{
		ID: 1, TournamentID: 5, HomeTeamID: 1, AwayTeamID: 2,
		Status: models.MatchStatusScheduled,
	})
	hub := &fakeBroadcaster{}
	svc := NewMatchService(matchRepo, hub, discardLogger())

	match, err := svc.UpdateScore(context.Background(), 1, UpdateScoreInput{HomeScore: 3, AwayScore: 1})
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusCompleted, match.Status)
	require.NotNil(t, match.HomeScore)
	require.NotNil(t, match.AwayScore)
	assert.Equal(t, 3, *match.HomeScore)
	assert.Equal(t, 1, *match.AwayScore)
}

func TestUpdateScoreOverwritesCompletedMatch(t *testing.T) {
	two := 2
	zero := 0
	matchRepo := newFakeMatchRepo(models.Match{
		ID: 1, TournamentID: 5, HomeTeamID: 1, AwayTeamID: 2,
		Status: models.MatchStatusCompleted, HomeScore: &two, AwayScore: &zero,
	})
	svc := NewMatchService(matchRepo, &fakeBroadcaster{}, discardLogger())

	match, err := svc.UpdateScore(context.Background(), 1, UpdateScoreInput{HomeScore: 2, AwayScore: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, *match.HomeScore)
	assert.Equal(t, 2, *match.AwayScore)
	assert.Equal(t, models.MatchStatusCompleted, match.Status)
}

func TestUpdateScoreRejectsNegative(t *testing.T) {
	matchRepo := newFakeMatchRepo(models.Match{
		ID: 1, TournamentID: 5, Status: models.MatchStatusScheduled,
	})
	svc := NewMatchService(matchRepo, &fakeBroadcaster{}, discardLogger())

	_, err := svc.UpdateScore(context.Background(), 1, UpdateScoreInput{HomeScore: -1, AwayScore: 0})
	assert.ErrorIs(t, err, ErrNegativeScore)

	match, getErr := matchRepo.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, models.MatchStatusScheduled, match.Status, "no mutation on rejected input")
}

func TestUpdateScoreMatchNotFound(t *testing.T) {
	svc := NewMatchService(newFakeMatchRepo(), &fakeBroadcaster{}, discardLogger())

	_, err := svc.UpdateScore(context.Background(), 99, UpdateScoreInput{HomeScore: 1, AwayScore: 0})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestUpdateScoreBroadcastsToTournamentRoom(t *testing.T) {
	matchRepo := newFakeMatchRepo(models.Match{
		ID: 1, TournamentID: 5, HomeTeamID: 1, AwayTeamID: 2,
		Status: models.MatchStatusScheduled,
	})
	hub := &fakeBroadcaster{}
	svc := NewMatchService(matchRepo, hub, discardLogger())

	_, err := svc.UpdateScore(context.Background(), 1, UpdateScoreInput{HomeScore: 1, AwayScore: 0})
	require.NoError(t, err)

	require.Len(t, hub.rooms, 1)
	assert.Equal(t, "5", hub.rooms[0])

	var event struct {
		Type    string       `json:"type"`
		Payload models.Match `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(hub.messages[0], &event))
	assert.Equal(t, "MATCH_UPDATED", event.Type)
	assert.Equal(t, 1, event.Payload.ID)
}

func TestListMatchesByTournamentStatusFilter(t *testing.T) {
	completed := models.MatchStatusCompleted
	matchRepo := newFakeMatchRepo(
		models.Match{ID: 1, TournamentID: 5, Status: models.MatchStatusScheduled},
		models.Match{ID: 2, TournamentID: 5, Status: models.MatchStatusCompleted},
		models.Match{ID: 3, TournamentID: 6, Status: models.MatchStatusCompleted},
	)
	svc := NewMatchService(matchRepo, &fakeBroadcaster{}, discardLogger())

	all, err := svc.ListMatchesByTournament(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	done, err := svc.ListMatchesByTournament(context.Background(), 5, &completed)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, 2, done[0].ID)
}
