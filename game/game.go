// Package game sequences the turns of a solo Yahtzee game: roll, optionally
// pick dice to throw again, then score the dice in exactly one category.
// A Game doesn't care how it is played; the shell and the autoplayer drive
// it one action at a time.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/scorecard"
)

// Mode says whether the player is in the middle of choosing dice to
// reroll.
type Mode int

const (
	NormalMode Mode = iota
	SelectingMode
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case SelectingMode:
		return "selecting"
	}
	return "invalid"
}

// TurnsPerGame is one turn per category.
const TurnsPerGame = scorecard.NumCategories

var (
	ErrNotNormalMode = errors.New("finish or cancel the reroll selection first")
	ErrNotSelecting  = errors.New("no reroll selection in progress")
	ErrGameOver      = errors.New("the game is over")
)

// Game binds the dice of the current turn to the scorecard.
type Game struct {
	rules   Rules
	dice    *dice.State
	card    *scorecard.Scorecard
	mode    Mode
	turnnum int
	history History
}

// NewGame starts a fresh game. A nil source means FrandSource.
func NewGame(rules Rules, src dice.Source) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = dice.FrandSource
	}
	ds, err := dice.NewState(rules.NumDice, rules.MaxRolls, src)
	if err != nil {
		return nil, err
	}
	g := &Game{rules: rules, dice: ds, card: scorecard.New()}
	log.Debug().Int("num-dice", rules.NumDice).Int("max-rolls", rules.MaxRolls).Msg("new-game")
	return g, nil
}

// NewGame throws away the scorecard and history and starts over with the
// same rules and random source.
func (g *Game) NewGame() {
	g.dice.Reset()
	g.card = scorecard.New()
	g.mode = NormalMode
	g.turnnum = 0
	g.history = nil
	log.Debug().Msg("game-restarted")
}

// RollAll throws every die. Once the budget for the turn is spent it
// quietly does nothing and reports false.
func (g *Game) RollAll() (bool, error) {
	if err := g.checkPlayable(); err != nil {
		return false, err
	}
	return g.dice.RollAll(), nil
}

// BeginSelection moves to selecting mode. There must be dice on the table.
func (g *Game) BeginSelection() error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	if !g.dice.HasDice() {
		return dice.ErrNoDice
	}
	g.mode = SelectingMode
	return nil
}

// CancelSelection drops any pending selection and returns to normal mode.
// The dice and the rolls taken are left as they were.
func (g *Game) CancelSelection() {
	g.mode = NormalMode
}

// ConfirmSelection rerolls the dice at the zero-based indices. Whether or
// not the reroll succeeds, the selection is over and the game is back in
// normal mode; a failed reroll is reported but not retried.
func (g *Game) ConfirmSelection(indices []int) error {
	if g.mode != SelectingMode {
		return ErrNotSelecting
	}
	g.mode = NormalMode
	if err := g.dice.RerollSubset(indices); err != nil {
		log.Debug().Err(err).Ints("indices", indices).Msg("reroll-discarded")
		return err
	}
	return nil
}

// Reroll is BeginSelection and ConfirmSelection in one step.
func (g *Game) Reroll(indices []int) error {
	if g.mode == NormalMode {
		if err := g.BeginSelection(); err != nil {
			return err
		}
	}
	return g.ConfirmSelection(indices)
}

// Commit scores the current dice in c and ends the turn. The scorecard
// may decline the dice (slot already used, or the roll doesn't qualify);
// the turn ends regardless, as it would at the table.
func (g *Game) Commit(c scorecard.Category) (TurnEvent, error) {
	if err := g.checkPlayable(); err != nil {
		return TurnEvent{}, err
	}
	if !c.Valid() {
		return TurnEvent{}, fmt.Errorf("%w: %d", scorecard.ErrUnknownCategory, int(c))
	}
	if !g.dice.HasDice() {
		return TurnEvent{}, dice.ErrNoDice
	}
	roll := g.dice.Dice()
	before := g.card.GrandTotal()
	scored := g.card.Commit(c, roll)
	g.turnnum++
	evt := TurnEvent{
		Turn:       g.turnnum,
		Dice:       roll,
		Rolls:      g.dice.RollsTaken(),
		Category:   c,
		Scored:     scored,
		Delta:      g.card.GrandTotal() - before,
		GrandTotal: g.card.GrandTotal(),
	}
	g.history = append(g.history, evt)
	g.dice.Reset()
	log.Debug().Int("turn", g.turnnum).Str("category", c.String()).
		Bool("scored", scored).Int("total", evt.GrandTotal).Msg("turn-over")
	return evt, nil
}

func (g *Game) checkPlayable() error {
	if g.IsOver() {
		return ErrGameOver
	}
	if g.mode != NormalMode {
		return ErrNotNormalMode
	}
	return nil
}

// IsOver is true once a turn has been played for every category.
func (g *Game) IsOver() bool {
	return g.turnnum >= TurnsPerGame
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Dice() dice.Roll {
	return g.dice.Dice()
}

func (g *Game) DiceState() *dice.State {
	return g.dice
}

func (g *Game) Scorecard() *scorecard.Scorecard {
	return g.card
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Turn is the 1-based number of the turn in progress.
func (g *Game) Turn() int {
	return g.turnnum + 1
}

func (g *Game) TurnsPlayed() int {
	return g.turnnum
}

func (g *Game) History() History {
	return g.history
}
