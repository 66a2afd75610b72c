package automatic

import (
	"github.com/samber/lo"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/scorecard"
)

const (
	// OneRollPolicy rolls once and scores right away.
	OneRollPolicy = "oneroll"
	// ChaseFacePolicy keeps the most common face and throws the rest
	// again until the rolls run out.
	ChaseFacePolicy = "chaseface"
)

func ValidPolicy(p string) bool {
	return p == OneRollPolicy || p == ChaseFacePolicy
}

// BestCategory picks the category in which roll adds the most to card.
// Open categories are considered, plus Yahtzee again when roll is another
// Yahtzee. Ties go to the category listed first. If nothing scores, the
// first open category is given up.
func BestCategory(card *scorecard.Scorecard, roll dice.Roll) scorecard.Category {
	best := scorecard.Category(-1)
	bestScore := -1
	for _, c := range scorecard.Categories() {
		if card.Filled(c) && c != scorecard.Yahtzee {
			continue
		}
		score, ok := scorecard.Evaluate(c, roll)
		if !ok {
			continue
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if best.Valid() {
		return best
	}
	if open := card.Open(); len(open) > 0 {
		return open[0]
	}
	return scorecard.Chance
}

// rerollIndices returns the positions that don't show the most common
// face. Ties go to the higher face.
func rerollIndices(roll dice.Roll) []int {
	counts := roll.Counts()
	keep := dice.MinFace
	for f := dice.MinFace; f <= dice.MaxFace; f++ {
		if counts[f] >= counts[keep] {
			keep = f
		}
	}
	return lo.FilterMap(roll, func(v int, i int) (int, bool) {
		return i, v != keep
	})
}
