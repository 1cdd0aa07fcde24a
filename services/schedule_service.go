package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Sagynai/league-system/models"
	"github.com/Sagynai/league-system/repositories"
	"github.com/Sagynai/league-system/schedule"
)

type ScheduleService interface {
	// GenerateSchedule создаёт все матчи однокругового турнира и возвращает
	// id созданных записей в порядке генерации.
	GenerateSchedule(ctx context.Context, tournamentID int) ([]int, error)
}

type scheduleService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger

	// Генерация сериализуется по турниру: конкурентные запросы на один
	// tournament_id не должны задваивать календарь.
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewScheduleService(
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		logger:         logger,
		locks:          make(map[int]*sync.Mutex),
	}
}

func (s *scheduleService) tournamentLock(tournamentID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[tournamentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[tournamentID] = lock
	}
	return lock
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, tournamentID int) ([]int, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	if len(tournament.TeamIDs) < 2 {
		return nil, ErrInsufficientParticipants
	}

	generator, err := generatorForFormat(tournament.Format)
	if err != nil {
		return nil, err
	}

	lock := s.tournamentLock(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.matchRepo.CountByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count fixtures for tournament %d: %w", tournamentID, err)
	}
	if existing > 0 {
		return nil, ErrScheduleAlreadyGenerated
	}

	pairings := generator.Generate(tournament.TeamIDs)

	// Вставки идут по одной и не откатываются: при сбое в середине уже
	// созданные матчи остаются в БД, ошибка возвращается как есть.
	createdIDs := make([]int, 0, len(pairings))
	for _, pairing := range pairings {
		match := &models.Match{
			TournamentID: tournamentID,
			HomeTeamID:   pairing.HomeTeamID,
			AwayTeamID:   pairing.AwayTeamID,
			Status:       models.MatchStatusScheduled,
		}
		if err := s.matchRepo.Create(ctx, match); err != nil {
			s.logger.Error("schedule generation stopped mid-way",
				slog.Int("tournament_id", tournamentID),
				slog.Int("created", len(createdIDs)),
				slog.Int("total", len(pairings)),
				slog.Any("error", err))
			return createdIDs, fmt.Errorf("failed to create fixture %d of %d: %w", len(createdIDs)+1, len(pairings), err)
		}
		createdIDs = append(createdIDs, match.ID)
	}

	s.logger.Info("schedule generated",
		slog.Int("tournament_id", tournamentID),
		slog.Int("fixtures", len(createdIDs)))
	return createdIDs, nil
}

func generatorForFormat(format models.TournamentFormat) (schedule.FixtureGenerator, error) {
	switch format {
	case models.FormatRoundRobin:
		return schedule.NewRoundRobinGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
