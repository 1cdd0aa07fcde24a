package schedule

import (
	"reflect"
	"testing"
)

func TestRoundRobinPairCount(t *testing.T) {
	gen := NewRoundRobinGenerator()

	for _, teams := range [][]int{
		{1, 2},
		{1, 2, 3},
		{1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5, 6},
		{10, 20, 30, 40, 50, 60, 70},
	} {
		n := len(teams)
		pairings := gen.Generate(teams)

		want := n * (n - 1) / 2
		if len(pairings) != want {
			t.Errorf("n=%d: got %d pairings, want %d", n, len(pairings), want)
		}

		type pair struct{ a, b int }
		seen := make(map[pair]int)
		for _, p := range pairings {
			if p.HomeTeamID == byeSlot || p.AwayTeamID == byeSlot {
				t.Errorf("n=%d: bye slot leaked into pairing %+v", n, p)
			}
			if p.HomeTeamID == p.AwayTeamID {
				t.Errorf("n=%d: team %d paired with itself", n, p.HomeTeamID)
			}
			a, b := p.HomeTeamID, p.AwayTeamID
			if a > b {
				a, b = b, a
			}
			seen[pair{a, b}]++
		}
		for p, count := range seen {
			if count != 1 {
				t.Errorf("n=%d: pair %d vs %d generated %d times, want 1", n, p.a, p.b, count)
			}
		}
	}
}

func TestRoundRobinThreeTeams(t *testing.T) {
	// Трассировка метода круга для [1 2 3] с bye:
	// тур 1: [1 2 3 b] -> (2,3); тур 2: [1 b 2 3] -> (1,3); тур 3: [1 3 b 2] -> (1,2)
	gen := NewRoundRobinGenerator()
	got := gen.Generate([]int{1, 2, 3})
	want := []Pairing{
		{HomeTeamID: 2, AwayTeamID: 3},
		{HomeTeamID: 1, AwayTeamID: 3},
		{HomeTeamID: 1, AwayTeamID: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate([1 2 3]) = %v, want %v", got, want)
	}
}

func TestRoundRobinFourTeams(t *testing.T) {
	gen := NewRoundRobinGenerator()
	got := gen.Generate([]int{1, 2, 3, 4})
	want := []Pairing{
		{HomeTeamID: 1, AwayTeamID: 4},
		{HomeTeamID: 2, AwayTeamID: 3},
		{HomeTeamID: 1, AwayTeamID: 3},
		{HomeTeamID: 4, AwayTeamID: 2},
		{HomeTeamID: 1, AwayTeamID: 2},
		{HomeTeamID: 3, AwayTeamID: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate([1 2 3 4]) = %v, want %v", got, want)
	}
}

func TestRoundRobinDeterministic(t *testing.T) {
	gen := NewRoundRobinGenerator()
	teams := []int{7, 3, 12, 5, 9}
	first := gen.Generate(teams)
	second := gen.Generate(teams)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%v\n%v", first, second)
	}
}

func TestRoundRobinDoesNotMutateInput(t *testing.T) {
	gen := NewRoundRobinGenerator()
	teams := []int{1, 2, 3, 4, 5}
	gen.Generate(teams)
	if !reflect.DeepEqual(teams, []int{1, 2, 3, 4, 5}) {
		t.Errorf("input slice mutated: %v", teams)
	}
}
