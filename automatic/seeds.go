package automatic

import (
	"fmt"

	"github.com/domino14/yahtzee/dice"
)

// GameSource returns the dice source for game gameID of a batch. With a
// seed phrase every game gets its own reproducible stream; without one the
// dice are truly random.
func GameSource(phrase string, gameID int) dice.Source {
	if phrase == "" {
		return dice.FrandSource
	}
	return dice.NewSeededSource(dice.SeedFromPhrase(fmt.Sprintf("%s#%d", phrase, gameID)))
}
