package scorecard

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/yahtzee/dice"
)

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	UpperBonusThreshold = 63
	UpperBonus          = 35

	smallStraightRun = 4
	largeStraightRun = 5
)

// Evaluate scores roll against c without touching any scorecard. The
// second return value is false when the roll does not satisfy the
// category; upper categories and chance always qualify. For Yahtzee the
// score is the amount a qualifying roll adds to the slot.
func Evaluate(c Category, roll dice.Roll) (int, bool) {
	switch {
	case c.Upper():
		face := c.Face()
		return lo.Sum(lo.Filter(roll, func(v int, _ int) bool { return v == face })), true
	case c == ThreeOfAKind:
		if maxOfAKind(roll) >= 3 {
			return roll.Sum(), true
		}
	case c == FourOfAKind:
		if maxOfAKind(roll) >= 4 {
			return roll.Sum(), true
		}
	case c == FullHouse:
		if isFullHouse(roll) {
			return FullHouseScore, true
		}
	case c == SmallStraight:
		if longestRun(roll) >= smallStraightRun {
			return SmallStraightScore, true
		}
	case c == LargeStraight:
		if longestRun(roll) >= largeStraightRun {
			return LargeStraightScore, true
		}
	case c == Yahtzee:
		if len(roll) > 0 && len(lo.Uniq(roll)) == 1 {
			return YahtzeeScore, true
		}
	case c == Chance:
		return roll.Sum(), true
	}
	return 0, false
}

func maxOfAKind(roll dice.Roll) int {
	counts := lo.Values(lo.CountValues(roll))
	if len(counts) == 0 {
		return 0
	}
	return lo.Max(counts)
}

// isFullHouse needs one face exactly three times and a different face
// exactly twice. Four of a kind plus one does not count.
func isFullHouse(roll dice.Roll) bool {
	counts := lo.Values(lo.CountValues(roll))
	return lo.Contains(counts, 3) && lo.Contains(counts, 2)
}

// longestRun is the length of the longest chain of consecutive distinct
// faces. Repeated faces neither break nor extend a run.
func longestRun(roll dice.Roll) int {
	faces := lo.Uniq(roll)
	if len(faces) == 0 {
		return 0
	}
	sort.Ints(faces)
	best, cur := 1, 1
	for i := 1; i < len(faces); i++ {
		if faces[i] == faces[i-1]+1 {
			cur++
		} else {
			cur = 1
		}
		best = max(best, cur)
	}
	return best
}
