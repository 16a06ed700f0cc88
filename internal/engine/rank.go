package engine

// Rank thresholds and names are paired positionally; xp at or above the top
// threshold stays at the top rank indefinitely.
var (
	rankThresholds = []int{0, 50, 120, 220, 360, 540}
	rankNames      = []string{"Recruit", "Soldier", "Corporal", "Sergeant", "Sub-lieutenant", "Lieutenant"}
)

type Rank struct {
	Name  string
	Level int
}

// RankForXP returns the rank for the given experience points. Callers
// guarantee xp >= 0.
func RankForXP(xp int) Rank {
	idx := 0
	for i, th := range rankThresholds {
		if xp >= th {
			idx = i
		}
	}
	return Rank{Name: rankNames[idx], Level: idx + 1}
}

// NextRankThreshold returns the XP required for the next rank. ok is false at
// the top rank.
func NextRankThreshold(xp int) (threshold int, ok bool) {
	for _, th := range rankThresholds {
		if xp < th {
			return th, true
		}
	}
	return 0, false
}
