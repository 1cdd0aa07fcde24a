package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Sagynai/league-system/models"
	"github.com/Sagynai/league-system/repositories"
)

// EventBroadcaster рассылает событие подписчикам комнаты турнира.
// Реализуется live.Hub.
type EventBroadcaster interface {
	BroadcastToRoom(room string, message []byte)
}

type MatchService interface {
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error)
	UpdateScore(ctx context.Context, matchID int, input UpdateScoreInput) (*models.Match, error)
}

type UpdateScoreInput struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       EventBroadcaster
	logger    *slog.Logger
}

func NewMatchService(matchRepo repositories.MatchRepository, hub EventBroadcaster, logger *slog.Logger) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		hub:       hub,
		logger:    logger,
	}
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListMatchesByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

// UpdateScore записывает счёт и переводит матч в completed. Повторное
// завершение перезаписывает прежний результат, это ожидаемое поведение.
func (s *matchService) UpdateScore(ctx context.Context, matchID int, input UpdateScoreInput) (*models.Match, error) {
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return nil, ErrNegativeScore
	}

	if err := s.matchRepo.UpdateScore(ctx, matchID, input.HomeScore, input.AwayScore); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update score for match %d: %w", matchID, err)
	}

	match, err := s.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	s.broadcastMatchUpdated(match)
	return match, nil
}

func (s *matchService) broadcastMatchUpdated(match *models.Match) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "MATCH_UPDATED",
		"payload": match,
	})
	if err != nil {
		s.logger.Error("failed to marshal match update event", slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(match.TournamentID), payload)
}
