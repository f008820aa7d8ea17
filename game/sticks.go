package game

import "github.com/samber/lo"

type RollProbability struct {
	Roll        Roll
	Probability float64
}

// Distribution of the four throw sticks, in roll order
var rolls = []RollProbability{
	{Roll: 1, Probability: 0.25},
	{Roll: 2, Probability: 0.375},
	{Roll: 3, Probability: 0.25},
	{Roll: 4, Probability: 0.0625},
	{Roll: 5, Probability: 0.0625},
}

// Rolls returns a copy of the stick throw distribution.
func Rolls() []RollProbability {
	return append([]RollProbability(nil), rolls...)
}

func TotalProbability() float64 {
	return lo.SumBy(rolls, func(r RollProbability) float64 { return r.Probability })
}

// ThrowSticks maps a uniform sample in [0, 1) to a roll.
func ThrowSticks(u float64) Roll {
	cumulative := 0.0
	for _, r := range rolls {
		cumulative += r.Probability
		if u < cumulative {
			return r.Roll
		}
	}
	return rolls[len(rolls)-1].Roll
}
