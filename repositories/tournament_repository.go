package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sagynai/league-system/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentNameTaken   = errors.New("tournament name already exists")
	ErrTournamentTeamInvalid = errors.New("tournament references unknown team")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	Delete(ctx context.Context, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

// Create вставляет турнир и его состав одной транзакцией: либо создаётся
// турнир со всеми ссылками на команды, либо ничего. Позиция в
// tournament_teams фиксирует порядок регистрации.
func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO tournaments (name, format, start_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query, t.Name, t.Format, t.StartDate).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return r.handleTournamentError(err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tournament_teams (tournament_id, team_id, position)
		VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("failed to prepare team insert: %w", err)
	}
	defer stmt.Close()

	for position, teamID := range t.TeamIDs {
		if _, err = stmt.ExecContext(ctx, t.ID, teamID, position); err != nil {
			return r.handleTournamentError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tournament create: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, name, format, start_date, created_at
		FROM tournaments
		WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Format, &t.StartDate, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	t.TeamIDs, err = r.listTeamIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) listTeamIDs(ctx context.Context, tournamentID int) ([]int, error) {
	query := `
		SELECT team_id
		FROM tournament_teams
		WHERE tournament_id = $1
		ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	query := `
		SELECT id, name, format, start_date, created_at
		FROM tournaments
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Format, &t.StartDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tournaments {
		tournaments[i].TeamIDs, err = r.listTeamIDs(ctx, tournaments[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tournaments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrTournamentNameTaken
		case "23503": // foreign_key_violation
			return ErrTournamentTeamInvalid
		}
	}
	return err
}
