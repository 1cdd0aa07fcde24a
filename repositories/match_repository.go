package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sagynai/league-system/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchTeamInvalid = errors.New("match references unknown team or tournament")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error)
	CountByTournament(ctx context.Context, tournamentID int) (int, error)
	UpdateScore(ctx context.Context, id int, homeScore, awayScore int) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, home_team_id, away_team_id, status, scheduled_date, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.TournamentID, match.HomeTeamID, match.AwayTeamID,
		match.Status, match.ScheduledDate, match.HomeScore, match.AwayScore,
	).Scan(&match.ID, &match.CreatedAt)
	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, tournament_id, home_team_id, away_team_id, status, scheduled_date, home_score, away_score, created_at
		FROM matches
		WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanMatch(row)
}

func (r *postgresMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	match := &models.Match{}
	err := rowScanner.Scan(
		&match.ID, &match.TournamentID, &match.HomeTeamID, &match.AwayTeamID,
		&match.Status, &match.ScheduledDate, &match.HomeScore, &match.AwayScore, &match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error) {
	query := `
		SELECT id, tournament_id, home_team_id, away_team_id, status, scheduled_date, home_score, away_score, created_at
		FROM matches
		WHERE tournament_id = $1`
	args := []interface{}{tournamentID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) CountByTournament(ctx context.Context, tournamentID int) (int, error) {
	query := `SELECT COUNT(*) FROM matches WHERE tournament_id = $1`
	var count int
	err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&count)
	return count, err
}

// UpdateScore выставляет оба счёта и статус completed одним UPDATE.
// Повторное завершение матча перезаписывает предыдущий результат.
func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id int, homeScore, awayScore int) error {
	query := `
		UPDATE matches
		SET home_score = $1, away_score = $2, status = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, homeScore, awayScore, models.MatchStatusCompleted, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" { // foreign_key_violation
			return ErrMatchTeamInvalid
		}
	}
	return err
}
