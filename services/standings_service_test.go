package services

import (
	"context"
	"testing"

	"github.com/Sagynai/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStandings(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{1, 2, 3},
	})
	teamRepo := newFakeTeamRepo(
		models.Team{ID: 1, Name: "Astana"},
		models.Team{ID: 2, Name: "Kairat"},
		models.Team{ID: 3, Name: "Tobol"},
	)
	three, one, zero := 3, 1, 0
	matchRepo := newFakeMatchRepo(
		models.Match{
			ID: 1, TournamentID: 1, HomeTeamID: 1, AwayTeamID: 2,
			Status: models.MatchStatusCompleted, HomeScore: &three, AwayScore: &one,
		},
		// Запланированный матч в таблицу не попадает.
		models.Match{
			ID: 2, TournamentID: 1, HomeTeamID: 2, AwayTeamID: 3,
			Status: models.MatchStatusScheduled,
		},
		// Матч чужого турнира.
		models.Match{
			ID: 3, TournamentID: 9, HomeTeamID: 1, AwayTeamID: 3,
			Status: models.MatchStatusCompleted, HomeScore: &zero, AwayScore: &three,
		},
	)
	svc := NewStandingsService(tournamentRepo, teamRepo, matchRepo)

	rows, err := svc.GetStandings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Astana", rows[0].TeamName)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 2, rows[0].GoalDifference)
	assert.Equal(t, "Tobol", rows[1].TeamName) // 0 очков, но gd 0 против -2 у Kairat
	assert.Equal(t, "Kairat", rows[2].TeamName)
	assert.Equal(t, 0, rows[2].Points)
}

func TestGetStandingsTournamentNotFound(t *testing.T) {
	svc := NewStandingsService(newFakeTournamentRepo(), newFakeTeamRepo(), newFakeMatchRepo())

	_, err := svc.GetStandings(context.Background(), 77)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGetStandingsEmptyTournament(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{},
	})
	svc := NewStandingsService(tournamentRepo, newFakeTeamRepo(), newFakeMatchRepo())

	rows, err := svc.GetStandings(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
