package hiscores

import "math"

// ExperienceForLevel returns the experience needed to reach level on the
// game's published curve: floor(sum(floor(L + 300*2^(L/7)) for L in 1..level-1) / 4).
// Level 1 and below need no experience.
func ExperienceForLevel(level int) int64 {
	var points int64
	for l := 1; l < level; l++ {
		points += int64(math.Floor(float64(l) + 300*math.Pow(2, float64(l)/7)))
	}
	return points / 4
}

// NextLevelExp is the experience threshold of level+1.
func NextLevelExp(level int) int64 {
	return ExperienceForLevel(level + 1)
}
