package schedule

// Pairing — одна сгенерированная пара. Первый элемент считается хозяином.
type Pairing struct {
	HomeTeamID int
	AwayTeamID int
}

type FixtureGenerator interface {
	// Generate принимает id команд в порядке регистрации и возвращает
	// полный список пар турнира. Результат детерминирован для
	// фиксированного порядка входа.
	Generate(teamIDs []int) []Pairing

	GetName() string
}
