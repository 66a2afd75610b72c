package game

import (
	"fmt"
	"strings"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/scorecard"
)

// TurnEvent records how a single turn ended.
type TurnEvent struct {
	Turn     int
	Dice     dice.Roll
	Rolls    int
	Category scorecard.Category
	// Scored is false when the commit left the card unchanged, e.g. a full
	// house claimed without one.
	Scored     bool
	Delta      int
	GrandTotal int
}

func (e TurnEvent) String() string {
	result := fmt.Sprintf("+%d", e.Delta)
	if !e.Scored {
		result = "no score"
	}
	return fmt.Sprintf("%2d. [%s] in %d roll(s) -> %s (%s), total %d",
		e.Turn, e.Dice, e.Rolls, e.Category.Label(), result, e.GrandTotal)
}

// History is the ordered list of completed turns.
type History []TurnEvent

func (h History) String() string {
	if len(h) == 0 {
		return "No turns played yet."
	}
	lines := make([]string, len(h))
	for i, e := range h {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
