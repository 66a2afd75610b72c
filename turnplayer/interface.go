package turnplayer

import (
	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/scorecard"
)

// TurnPlayer encapsulates all the functions needed to play a single turn
// of Yahtzee.
type TurnPlayer interface {
	RollAll() (bool, error)
	Reroll(indices []int) error
	Commit(c scorecard.Category) (game.TurnEvent, error)
	Dice() dice.Roll
	DiceState() *dice.State
	Scorecard() *scorecard.Scorecard
	IsOver() bool
}

var _ TurnPlayer = (*BaseTurnPlayer)(nil)
