package scorecard

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the thirteen scoring slots.
type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance

	NumCategories = 13
	NumUpper      = 6
)

var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [NumCategories]string{
	"aces", "twos", "threes", "fours", "fives", "sixes",
	"three-of-a-kind", "four-of-a-kind", "full-house",
	"small-straight", "large-straight", "yahtzee", "chance",
}

var categoryLabels = [NumCategories]string{
	"Aces", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"Three of a kind", "Four of a kind", "Full house",
	"Small straight", "Large straight", "Yahtzee", "Chance",
}

// The single-key shortcuts of the keyboard UI.
var categoryShortcuts = map[string]Category{
	"1": Aces, "2": Twos, "3": Threes, "4": Fours, "5": Fives, "6": Sixes,
	"t": ThreeOfAKind, "f": FourOfAKind, "h": FullHouse,
	"s": SmallStraight, "l": LargeStraight, "y": Yahtzee, "c": Chance,
}

// Categories lists every category in scorecard order.
func Categories() []Category {
	cs := make([]Category, NumCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

func (c Category) Valid() bool {
	return c >= Aces && c <= Chance
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Label is the human-readable name shown on the scorecard.
func (c Category) Label() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// Upper reports whether c belongs to the number-matching upper section.
func (c Category) Upper() bool {
	return c >= Aces && c <= Sixes
}

// Face is the die face scored by an upper category, or 0.
func (c Category) Face() int {
	if !c.Upper() {
		return 0
	}
	return int(c-Aces) + 1
}

// CategoryFromString accepts a category name (case-insensitive, with
// spaces, dashes or underscores) or a single-key shortcut.
func CategoryFromString(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryShortcuts[key]; ok {
		return c, nil
	}
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	for i, name := range categoryNames {
		if key == name {
			return Category(i), nil
		}
	}
	switch key {
	case "ones":
		return Aces, nil
	case "3k", "3-of-a-kind":
		return ThreeOfAKind, nil
	case "4k", "4-of-a-kind":
		return FourOfAKind, nil
	case "fh":
		return FullHouse, nil
	case "ss", "sm-straight":
		return SmallStraight, nil
	case "ls", "lg-straight":
		return LargeStraight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
