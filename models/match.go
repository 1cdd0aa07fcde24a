package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

type Match struct {
	ID            int         `json:"id" db:"id"`
	TournamentID  int         `json:"tournament_id" db:"tournament_id"`
	HomeTeamID    int         `json:"home_team_id" db:"home_team_id"`
	AwayTeamID    int         `json:"away_team_id" db:"away_team_id"`
	Status        MatchStatus `json:"status" db:"status"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty" db:"scheduled_date"`
	HomeScore     *int        `json:"home_score,omitempty" db:"home_score"`
	AwayScore     *int        `json:"away_score,omitempty" db:"away_score"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`

	HomeTeam *Team `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team `json:"away_team,omitempty" db:"-"`
}
