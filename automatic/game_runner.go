// Package automatic plays solo games without a human at the keyboard. It
// exists to measure the scoring engine over many games, not to play well.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/scorecard"
)

// GameRunner plays whole games with a fixed policy.
type GameRunner struct {
	game   *game.Game
	policy string
}

// NewGameRunner sets up a runner. A nil source means truly random dice.
func NewGameRunner(rules game.Rules, src dice.Source, policy string) (*GameRunner, error) {
	if !ValidPolicy(policy) {
		return nil, fmt.Errorf("unknown policy %q", policy)
	}
	g, err := game.NewGame(rules, src)
	if err != nil {
		return nil, err
	}
	return &GameRunner{game: g, policy: policy}, nil
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayTurn rolls, possibly rerolls, and commits one turn.
func (r *GameRunner) PlayTurn() (game.TurnEvent, error) {
	if _, err := r.game.RollAll(); err != nil {
		return game.TurnEvent{}, err
	}
	if r.policy == ChaseFacePolicy {
		for !r.game.DiceState().Exhausted() {
			idxs := rerollIndices(r.game.Dice())
			if len(idxs) == 0 {
				break
			}
			if err := r.game.Reroll(idxs); err != nil {
				return game.TurnEvent{}, err
			}
		}
	}
	c := BestCategory(r.game.Scorecard(), r.game.Dice())
	return r.game.Commit(c)
}

// PlayGame starts a new game and plays it to the end.
func (r *GameRunner) PlayGame(gameID int) (GameResult, error) {
	r.game.NewGame()
	yahtzees := 0
	for !r.game.IsOver() {
		evt, err := r.PlayTurn()
		if err != nil {
			return GameResult{}, err
		}
		if evt.Category == scorecard.Yahtzee && evt.Scored {
			yahtzees++
		}
	}
	card := r.game.Scorecard()
	_, bonus := card.Bonus()
	res := GameResult{
		GameID:   gameID,
		Total:    card.GrandTotal(),
		Upper:    card.UpperTotal(),
		Lower:    card.LowerTotal(),
		Bonus:    bonus,
		Yahtzees: yahtzees,
	}
	log.Debug().Int("game", gameID).Int("total", res.Total).Msg("autoplay-game-over")
	return res, nil
}

// GameResult is the summary of one finished game.
type GameResult struct {
	GameID   int
	Total    int
	Upper    int
	Lower    int
	Bonus    bool
	Yahtzees int
}

func (g GameResult) csvRecord() []string {
	return []string{
		fmt.Sprint(g.GameID),
		fmt.Sprint(g.Total),
		fmt.Sprint(g.Upper),
		fmt.Sprint(g.Lower),
		fmt.Sprint(g.Bonus),
		fmt.Sprint(g.Yahtzees),
	}
}
