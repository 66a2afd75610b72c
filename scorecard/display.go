package scorecard

import (
	"fmt"
	"strconv"
	"strings"
)

func slotText(v int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(v)
}

// ToDisplayText renders the card as a two-section table.
func (s *Scorecard) ToDisplayText() string {
	var sb strings.Builder
	row := func(label, val string) {
		fmt.Fprintf(&sb, "  %-22s%5s\n", label, val)
	}
	sb.WriteString("Upper section\n")
	for c := Aces; c <= Sixes; c++ {
		row(c.Label(), slotText(s.Value(c)))
	}
	row("Total without bonus", strconv.Itoa(s.UpperScoreWithoutBonus()))
	row("Bonus", slotText(s.Bonus()))
	row("Upper total", strconv.Itoa(s.UpperTotal()))
	sb.WriteString("Lower section\n")
	for c := ThreeOfAKind; c <= Chance; c++ {
		row(c.Label(), slotText(s.Value(c)))
	}
	row("Lower total", strconv.Itoa(s.LowerTotal()))
	row("Grand total", strconv.Itoa(s.GrandTotal()))
	return sb.String()
}
