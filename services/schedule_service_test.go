package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Sagynai/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateScheduleCreatesAllFixtures(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID:      1,
		Name:    "Spring Cup",
		Format:  models.FormatRoundRobin,
		TeamIDs: []int{10, 20, 30, 40},
	})
	matchRepo := newFakeMatchRepo()
	svc := NewScheduleService(tournamentRepo, matchRepo, discardLogger())

	created, err := svc.GenerateSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, created, 6) // 4*3/2

	matches, err := matchRepo.ListByTournament(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 6)
	for _, match := range matches {
		assert.Equal(t, models.MatchStatusScheduled, match.Status)
		assert.Nil(t, match.HomeScore)
		assert.Nil(t, match.AwayScore)
	}
}

func TestGenerateScheduleOddTeamCount(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{1, 2, 3, 4, 5},
	})
	svc := NewScheduleService(tournamentRepo, newFakeMatchRepo(), discardLogger())

	created, err := svc.GenerateSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, created, 10) // 5*4/2, bye не порождает матчей
}

func TestGenerateScheduleTournamentNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeTournamentRepo(), newFakeMatchRepo(), discardLogger())

	_, err := svc.GenerateSchedule(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGenerateScheduleInsufficientParticipants(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{7},
	})
	matchRepo := newFakeMatchRepo()
	svc := NewScheduleService(tournamentRepo, matchRepo, discardLogger())

	_, err := svc.GenerateSchedule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInsufficientParticipants)

	count, _ := matchRepo.CountByTournament(context.Background(), 1)
	assert.Zero(t, count, "no matches may be created on rejection")
}

func TestGenerateScheduleRefusesRegeneration(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{1, 2, 3},
	})
	matchRepo := newFakeMatchRepo()
	svc := NewScheduleService(tournamentRepo, matchRepo, discardLogger())

	_, err := svc.GenerateSchedule(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.GenerateSchedule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScheduleAlreadyGenerated)

	count, _ := matchRepo.CountByTournament(context.Background(), 1)
	assert.Equal(t, 3, count, "regeneration must not duplicate fixtures")
}

func TestGenerateScheduleUnsupportedFormat(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: "single_elimination", TeamIDs: []int{1, 2, 3, 4},
	})
	svc := NewScheduleService(tournamentRepo, newFakeMatchRepo(), discardLogger())

	_, err := svc.GenerateSchedule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGenerateSchedulePartialCreation(t *testing.T) {
	tournamentRepo := newFakeTournamentRepo(models.Tournament{
		ID: 1, Format: models.FormatRoundRobin, TeamIDs: []int{1, 2, 3, 4},
	})
	insertErr := errors.New("connection reset")
	matchRepo := newFakeMatchRepo()
	matchRepo.failAfter = 4
	matchRepo.failErr = insertErr
	svc := NewScheduleService(tournamentRepo, matchRepo, discardLogger())

	created, err := svc.GenerateSchedule(context.Background(), 1)
	require.ErrorIs(t, err, insertErr)

	// Уже созданные матчи остаются, это документированное ограничение.
	assert.Len(t, created, 4)
	count, _ := matchRepo.CountByTournament(context.Background(), 1)
	assert.Equal(t, 4, count)
}
