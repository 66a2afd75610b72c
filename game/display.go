package game

import (
	"fmt"
	"strings"
)

// ToDisplayText turns the current state of the game into a displayable
// string: the dice on the table, the roll counter and the scorecard.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	if g.IsOver() {
		fmt.Fprintf(&sb, "Game over after %d turns.\n", g.turnnum)
	} else {
		fmt.Fprintf(&sb, "Turn %d of %d\n", g.Turn(), TurnsPerGame)
	}
	ds := g.dice
	diceText := "(not rolled)"
	if ds.HasDice() {
		diceText = ds.Dice().String()
		positions := make([]string, ds.NumDice())
		for i := range positions {
			positions[i] = fmt.Sprintf("%d", i+1)
		}
		diceText += "\n      " + strings.Join(positions, " ")
	}
	fmt.Fprintf(&sb, "Dice: %s\n", diceText)
	fmt.Fprintf(&sb, "Roll %d / %d", ds.RollsTaken(), ds.MaxRolls())
	if g.mode == SelectingMode {
		sb.WriteString("  [selecting dice to reroll]")
	}
	sb.WriteString("\n\n")
	sb.WriteString(g.card.ToDisplayText())
	return sb.String()
}
