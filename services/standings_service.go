package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sagynai/league-system/models"
	"github.com/Sagynai/league-system/repositories"
	"github.com/Sagynai/league-system/standings"
	"golang.org/x/sync/errgroup"
)

type StandingsService interface {
	// GetStandings пересчитывает таблицу турнира по завершённым матчам.
	GetStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error)
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	var (
		teams   []models.Team
		matches []models.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByIDs(gctx, tournament.TeamIDs)
		if err != nil {
			return fmt.Errorf("failed to load teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		completed := models.MatchStatusCompleted
		var err error
		matches, err = s.matchRepo.ListByTournament(gctx, tournamentID, &completed)
		if err != nil {
			return fmt.Errorf("failed to load completed matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return standings.Compute(teams, matches), nil
}
