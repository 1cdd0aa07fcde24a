package services

import (
	"context"
	"sort"

	"github.com/Sagynai/league-system/models"
	"github.com/Sagynai/league-system/repositories"
)

// In-memory репозитории для тестов сервисного слоя.

type fakeTeamRepo struct {
	teams  map[int]models.Team
	nextID int
}

func newFakeTeamRepo(teams ...models.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[int]models.Team), nextID: 1}
	for _, team := range teams {
		repo.teams[team.ID] = team
		if team.ID >= repo.nextID {
			repo.nextID = team.ID + 1
		}
	}
	return repo
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = r.nextID
	r.nextID++
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &team, nil
}

func (r *fakeTeamRepo) ListByIDs(_ context.Context, ids []int) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		if team, ok := r.teams[id]; ok {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, teamID int, logoKey *string) error {
	team, ok := r.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	r.teams[teamID] = team
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

type fakeTournamentRepo struct {
	tournaments map[int]models.Tournament
	nextID      int
}

func newFakeTournamentRepo(tournaments ...models.Tournament) *fakeTournamentRepo {
	repo := &fakeTournamentRepo{tournaments: make(map[int]models.Tournament), nextID: 1}
	for _, t := range tournaments {
		repo.tournaments[t.ID] = t
		if t.ID >= repo.nextID {
			repo.nextID = t.ID + 1
		}
	}
	return repo
}

func (r *fakeTournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	t.ID = r.nextID
	r.nextID++
	r.tournaments[t.ID] = *t
	return nil
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r *fakeTournamentRepo) List(_ context.Context) ([]models.Tournament, error) {
	tournaments := make([]models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

func (r *fakeTournamentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}

type fakeMatchRepo struct {
	matches map[int]models.Match
	nextID  int

	// failAfter прерывает Create после указанного числа успешных вставок,
	// имитируя частичное создание календаря. 0 — без сбоев.
	failAfter int
	failErr   error
}

func newFakeMatchRepo(matches ...models.Match) *fakeMatchRepo {
	repo := &fakeMatchRepo{matches: make(map[int]models.Match), nextID: 1}
	for _, m := range matches {
		repo.matches[m.ID] = m
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
	}
	return repo
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	if r.failAfter > 0 && len(r.matches) >= r.failAfter {
		return r.failErr
	}
	match.ID = r.nextID
	r.nextID++
	r.matches[match.ID] = *match
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return &match, nil
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	for _, match := range r.matches {
		if match.TournamentID != tournamentID {
			continue
		}
		if status != nil && match.Status != *status {
			continue
		}
		matches = append(matches, match)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeMatchRepo) CountByTournament(_ context.Context, tournamentID int) (int, error) {
	count := 0
	for _, match := range r.matches {
		if match.TournamentID == tournamentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeMatchRepo) UpdateScore(_ context.Context, id int, homeScore, awayScore int) error {
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.Status = models.MatchStatusCompleted
	r.matches[id] = match
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

type fakeBroadcaster struct {
	rooms    []string
	messages [][]byte
}

func (b *fakeBroadcaster) BroadcastToRoom(room string, message []byte) {
	b.rooms = append(b.rooms, room)
	b.messages = append(b.messages, message)
}
