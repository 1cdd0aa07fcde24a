package standings

import (
	"sort"

	"github.com/Sagynai/league-system/models"
)

// Очки за исход матча, классическая футбольная схема.
const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// Compute строит турнирную таблицу по завершённым матчам. Матчи с другим
// статусом и матчи, ссылающиеся на неизвестные команды, пропускаются.
// Функция чистая: не владеет состоянием, безопасна для конкурентных вызовов.
func Compute(teams []models.Team, matches []models.Match) []models.StandingRow {
	index := make(map[int]*models.StandingRow, len(teams))
	rows := make([]models.StandingRow, len(teams))
	for i, team := range teams {
		rows[i] = models.StandingRow{TeamID: team.ID, TeamName: team.Name}
		index[team.ID] = &rows[i]
	}

	for _, match := range matches {
		if match.Status != models.MatchStatusCompleted || match.HomeScore == nil || match.AwayScore == nil {
			continue
		}
		home := index[match.HomeTeamID]
		away := index[match.AwayTeamID]
		if home == nil || away == nil {
			// Осиротевший матч, команда не входит в турнир.
			continue
		}

		hs, as := *match.HomeScore, *match.AwayScore

		home.Played++
		away.Played++
		home.GoalsFor += hs
		home.GoalsAgainst += as
		away.GoalsFor += as
		away.GoalsAgainst += hs
		home.GoalDifference = home.GoalsFor - home.GoalsAgainst
		away.GoalDifference = away.GoalsFor - away.GoalsAgainst

		switch {
		case hs > as:
			home.Won++
			away.Lost++
			home.Points += pointsPerWin
		case hs < as:
			away.Won++
			home.Lost++
			away.Points += pointsPerWin
		default:
			home.Drawn++
			away.Drawn++
			home.Points += pointsPerDraw
			away.Points += pointsPerDraw
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		// Третичный ключ: имя команды, чтобы порядок был детерминированным.
		return rows[i].TeamName < rows[j].TeamName
	})
	return rows
}
