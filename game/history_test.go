package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/yahtzee/scorecard"
)

func TestHistoryRecordsTurns(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 1, 2, 3, 4, 6, 5)
	is.Equal(g.History().String(), "No turns played yet.")

	_, err := g.RollAll()
	is.NoErr(err)
	is.NoErr(g.Reroll([]int{4}))
	_, err = g.Commit(scorecard.LargeStraight)
	is.NoErr(err)

	_, err = g.RollAll()
	is.NoErr(err)
	_, err = g.Commit(scorecard.LargeStraight)
	is.NoErr(err)

	h := g.History()
	is.Equal(len(h), 2)
	is.Equal(h[0].Rolls, 2)
	is.True(h[0].Scored)
	is.Equal(h[0].GrandTotal, 40)
	is.True(!h[1].Scored)
	is.Equal(h[1].GrandTotal, 40)

	lines := strings.Split(h.String(), "\n")
	is.Equal(len(lines), 2)
	is.True(strings.Contains(lines[0], "Large straight (+40)"))
	is.True(strings.Contains(lines[1], "no score"))
}
