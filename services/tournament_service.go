package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sagynai/league-system/models"
	"github.com/Sagynai/league-system/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
}

type CreateTournamentInput struct {
	Name      string     `json:"name"`
	Format    string     `json:"format"`
	StartDate *time.Time `json:"start_date"`
	TeamIDs   []int      `json:"team_ids"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}

	format := models.TournamentFormat(input.Format)
	if format == "" {
		format = models.FormatRoundRobin
	}
	if format != models.FormatRoundRobin {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, input.Format)
	}

	// Все указанные команды должны существовать, иначе турнир не создаётся.
	if len(input.TeamIDs) > 0 {
		teams, err := s.teamRepo.ListByIDs(ctx, input.TeamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve team ids: %w", err)
		}
		if len(teams) != len(uniqueIDs(input.TeamIDs)) {
			return nil, ErrInvalidTeamReference
		}
	}

	tournament := &models.Tournament{
		Name:      name,
		Format:    format,
		StartDate: input.StartDate,
		TeamIDs:   input.TeamIDs,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNameTaken):
			return nil, ErrTournamentNameConflict
		case errors.Is(err, repositories.ErrTournamentTeamInvalid):
			return nil, ErrInvalidTeamReference
		default:
			return nil, fmt.Errorf("failed to create tournament: %w", err)
		}
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
