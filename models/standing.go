package models

// StandingRow — строка турнирной таблицы. Никогда не сохраняется в БД,
// пересчитывается по завершённым матчам на каждый запрос.
type StandingRow struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
	Points         int    `json:"points"`
}
