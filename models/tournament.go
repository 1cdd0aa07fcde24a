package models

import "time"

// TournamentFormat соответствует ENUM в БД. Пока поддерживается только
// круговая система.
type TournamentFormat string

const (
	FormatRoundRobin TournamentFormat = "round_robin"
)

type Tournament struct {
	ID        int              `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Format    TournamentFormat `json:"format" db:"format"`
	StartDate *time.Time       `json:"start_date,omitempty" db:"start_date"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`

	// TeamIDs хранит участников в порядке регистрации. Порядок фиксируется
	// при создании турнира и определяет вход планировщика.
	TeamIDs []int `json:"team_ids" db:"-"`

	Teams   []Team  `json:"teams,omitempty" db:"-"`
	Matches []Match `json:"matches,omitempty" db:"-"`
}
