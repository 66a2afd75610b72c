package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/scorecard"
)

// BaseTurnPlayer adds the text-input layer on top of a game: selections
// and categories arrive as strings typed by a person.
type BaseTurnPlayer struct {
	*game.Game
}

// BaseTurnPlayerFromRules is a good entry point
func BaseTurnPlayerFromRules(rules game.Rules, src dice.Source) (*BaseTurnPlayer, error) {
	g, err := game.NewGame(rules, src)
	if err != nil {
		return nil, err
	}
	return &BaseTurnPlayer{g}, nil
}

// ConfirmSelectionString confirms a pending selection typed as "1,3,5".
// Input that does not parse discards the selection, exactly like a
// reroll that fails.
func (p *BaseTurnPlayer) ConfirmSelectionString(selection string) error {
	indices, err := ParseSelection(selection)
	if err != nil {
		log.Debug().Err(err).Msg("selection-discarded")
		p.CancelSelection()
		return err
	}
	return p.ConfirmSelection(indices)
}

// RerollString is ConfirmSelectionString that also opens the selection.
func (p *BaseTurnPlayer) RerollString(selection string) error {
	if p.Mode() == game.NormalMode {
		if err := p.BeginSelection(); err != nil {
			return err
		}
	}
	return p.ConfirmSelectionString(selection)
}

// CommitString scores the dice in the category named by s.
func (p *BaseTurnPlayer) CommitString(s string) (game.TurnEvent, error) {
	c, err := scorecard.CategoryFromString(s)
	if err != nil {
		return game.TurnEvent{}, err
	}
	return p.Commit(c)
}
