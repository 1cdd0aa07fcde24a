package schedule

// byeSlot занимает свободную позицию при нечётном числе команд.
// Реальные id команд всегда положительные (serial в БД).
const byeSlot = -1

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate строит однокруговое расписание методом круга: позиция 0
// зафиксирована, остальные позиции сдвигаются по кругу после каждого тура.
// В туре позиция i играет с позицией n-1-i, пары с bye отбрасываются.
func (g *RoundRobinGenerator) Generate(teamIDs []int) []Pairing {
	slots := make([]int, len(teamIDs))
	copy(slots, teamIDs)
	if len(slots)%2 == 1 {
		slots = append(slots, byeSlot)
	}

	n := len(slots)
	rounds := n - 1
	half := n / 2

	pairings := make([]Pairing, 0, len(teamIDs)*(len(teamIDs)-1)/2)
	for r := 0; r < rounds; r++ {
		for i := 0; i < half; i++ {
			home, away := slots[i], slots[n-1-i]
			if home == byeSlot || away == byeSlot {
				continue
			}
			pairings = append(pairings, Pairing{HomeTeamID: home, AwayTeamID: away})
		}
		rotate(slots)
	}
	return pairings
}

// rotate сдвигает слоты на месте: slots[0] остаётся, последний элемент
// переходит на позицию 1, остальные смещаются вправо.
func rotate(slots []int) {
	n := len(slots)
	last := slots[n-1]
	copy(slots[2:], slots[1:n-1])
	slots[1] = last
}
