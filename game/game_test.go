package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/scorecard"
)

// faceSource replays die faces in order, wrapping around.
type faceSource struct {
	faces []int
	pos   int
}

func (f *faceSource) Intn(n int) int {
	v := (f.faces[f.pos%len(f.faces)] - 1) % n
	f.pos++
	return v
}

func newTestGame(t *testing.T, faces ...int) *Game {
	g, err := NewGame(DefaultRules(), &faceSource{faces: faces})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGameRejectsBadRules(t *testing.T) {
	is := is.New(t)
	_, err := NewGame(Rules{NumDice: 0, MaxRolls: 3}, nil)
	is.True(errors.Is(err, ErrInvalidRules))
}

func TestRollThenCommitResetsDice(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 2, 2, 3, 3, 3)
	rolled, err := g.RollAll()
	is.NoErr(err)
	is.True(rolled)
	is.Equal(g.Dice(), dice.Roll{2, 2, 3, 3, 3})

	evt, err := g.Commit(scorecard.FullHouse)
	is.NoErr(err)
	is.True(evt.Scored)
	is.Equal(evt.Delta, 25)
	is.Equal(evt.Turn, 1)
	is.Equal(evt.Rolls, 1)

	v, ok := g.Scorecard().Value(scorecard.FullHouse)
	is.True(ok)
	is.Equal(v, 25)
	is.Equal(len(g.Dice()), 0)
	is.Equal(g.DiceState().RollsTaken(), 0)
	is.Equal(g.Turn(), 2)
	is.Equal(len(g.History()), 1)
}

func TestCommitBeforeRoll(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1)
	_, err := g.Commit(scorecard.Chance)
	is.True(errors.Is(err, dice.ErrNoDice))
	is.Equal(g.TurnsPlayed(), 0)
}

func TestCommitInvalidCategory(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1)
	_, err := g.RollAll()
	is.NoErr(err)
	_, err = g.Commit(scorecard.Category(99))
	is.True(errors.Is(err, scorecard.ErrUnknownCategory))
	is.Equal(g.TurnsPlayed(), 0)
}

func TestNonQualifyingCommitStillEndsTurn(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 5, 6)
	_, err := g.RollAll()
	is.NoErr(err)
	evt, err := g.Commit(scorecard.SmallStraight)
	is.NoErr(err)
	is.True(!evt.Scored)
	is.Equal(evt.Delta, 0)
	is.True(!g.Scorecard().Filled(scorecard.SmallStraight))
	is.Equal(g.TurnsPlayed(), 1)
	is.True(!g.DiceState().HasDice())
}

func TestSelectionRequiresDice(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 4)
	is.True(errors.Is(g.BeginSelection(), dice.ErrNoDice))
	is.Equal(g.Mode(), NormalMode)
}

func TestSelectionConfirm(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 4, 5, 6, 6)
	_, err := g.RollAll()
	is.NoErr(err)
	is.NoErr(g.BeginSelection())
	is.Equal(g.Mode(), SelectingMode)

	// Nothing else is allowed while selecting.
	_, err = g.RollAll()
	is.True(errors.Is(err, ErrNotNormalMode))
	_, err = g.Commit(scorecard.Chance)
	is.True(errors.Is(err, ErrNotNormalMode))

	is.NoErr(g.ConfirmSelection([]int{0, 1}))
	is.Equal(g.Mode(), NormalMode)
	is.Equal(g.Dice(), dice.Roll{6, 6, 3, 4, 5})
	is.Equal(g.DiceState().RollsTaken(), 2)
}

func TestSelectionCancel(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 4, 5)
	_, err := g.RollAll()
	is.NoErr(err)
	is.NoErr(g.BeginSelection())
	g.CancelSelection()
	is.Equal(g.Mode(), NormalMode)
	// Backing out keeps the dice on the table and the rolls already spent.
	is.Equal(g.Dice(), dice.Roll{1, 2, 3, 4, 5})
	is.Equal(g.DiceState().RollsTaken(), 1)
	is.True(errors.Is(g.ConfirmSelection([]int{0}), ErrNotSelecting))
}

func TestFailedConfirmActsAsCancel(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 4, 5)
	_, err := g.RollAll()
	is.NoErr(err)
	is.NoErr(g.BeginSelection())
	err = g.ConfirmSelection([]int{5})
	is.True(errors.Is(err, dice.ErrInvalidSelection))
	is.Equal(g.Mode(), NormalMode)
	is.Equal(g.DiceState().RollsTaken(), 1)
	is.Equal(g.Dice(), dice.Roll{1, 2, 3, 4, 5})
}

func TestBudgetExhaustedConfirm(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 3)
	for i := 0; i < 3; i++ {
		_, err := g.RollAll()
		is.NoErr(err)
	}
	rolled, err := g.RollAll()
	is.NoErr(err)
	is.True(!rolled)
	err = g.Reroll([]int{0})
	is.True(errors.Is(err, dice.ErrRollBudgetExhausted))
	is.Equal(g.Mode(), NormalMode)
}

func TestYahtzeeTwiceAcrossTurns(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 5)
	for i := 0; i < 2; i++ {
		_, err := g.RollAll()
		is.NoErr(err)
		evt, err := g.Commit(scorecard.Yahtzee)
		is.NoErr(err)
		is.True(evt.Scored)
		is.Equal(evt.Delta, 50)
	}
	v, _ := g.Scorecard().Value(scorecard.Yahtzee)
	is.Equal(v, 100)
}

func TestGameOverAfterThirteenTurns(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 6, 6, 6, 6, 6)
	for _, c := range scorecard.Categories() {
		is.True(!g.IsOver())
		_, err := g.RollAll()
		is.NoErr(err)
		_, err = g.Commit(c)
		is.NoErr(err)
	}
	is.True(g.IsOver())
	_, err := g.RollAll()
	is.True(errors.Is(err, ErrGameOver))
	_, err = g.Commit(scorecard.Chance)
	is.True(errors.Is(err, ErrGameOver))
	is.Equal(len(g.History()), TurnsPerGame)

	// Sixes 30 (no bonus), 3k 30, 4k 30, yahtzee 50, chance 30.
	is.Equal(g.Scorecard().GrandTotal(), 170)

	g.NewGame()
	is.True(!g.IsOver())
	is.Equal(g.Turn(), 1)
	is.Equal(g.Scorecard().GrandTotal(), 0)
	is.Equal(len(g.History()), 0)
}

func TestModeString(t *testing.T) {
	is := is.New(t)
	is.Equal(NormalMode.String(), "normal")
	is.Equal(SelectingMode.String(), "selecting")
	is.Equal(Mode(7).String(), "invalid")
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 4, 5)
	is.True(len(g.ToDisplayText()) > 0)
	_, err := g.RollAll()
	is.NoErr(err)
	is.NoErr(g.BeginSelection())
	out := g.ToDisplayText()
	for _, want := range []string{"Turn 1 of 13", "1 2 3 4 5", "Roll 1 / 3", "selecting"} {
		is.True(strings.Contains(out, want))
	}
}
