// Package scorecard evaluates dice against the thirteen Yahtzee categories
// and keeps the running card for one game.
package scorecard

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/dice"
)

type slot struct {
	value  int
	filled bool
}

// Scorecard holds one optional score per category plus the upper bonus.
// A filled slot never changes again, except Yahtzee, which grows by 50 on
// every further Yahtzee committed to it. The bonus is never unset.
type Scorecard struct {
	slots [NumCategories]slot
	bonus slot
}

func New() *Scorecard {
	return &Scorecard{}
}

// Commit scores roll into c. It never fails: a filled slot other than
// Yahtzee, or a roll that does not qualify for c, leaves the card as it
// was. The return value says whether the card changed.
func (s *Scorecard) Commit(c Category, roll dice.Roll) bool {
	if !c.Valid() {
		return false
	}
	sl := &s.slots[c]
	changed := false
	score, ok := Evaluate(c, roll)
	switch {
	case !ok:
	case c == Yahtzee:
		sl.value += score
		sl.filled = true
		changed = true
	case !sl.filled:
		sl.value = score
		sl.filled = true
		changed = true
	}
	if c.Upper() {
		s.checkBonus()
	}
	log.Debug().Str("category", c.String()).Str("dice", roll.String()).
		Bool("changed", changed).Int("value", sl.value).Msg("commit")
	return changed
}

func (s *Scorecard) checkBonus() {
	if s.bonus.filled {
		return
	}
	if s.UpperScoreWithoutBonus() >= UpperBonusThreshold {
		s.bonus = slot{value: UpperBonus, filled: true}
		log.Debug().Int("upper", s.UpperScoreWithoutBonus()).Msg("upper-bonus-awarded")
	}
}

// Value returns the score in c and whether c has been played.
func (s *Scorecard) Value(c Category) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	return s.slots[c].value, s.slots[c].filled
}

func (s *Scorecard) Filled(c Category) bool {
	_, ok := s.Value(c)
	return ok
}

// Bonus returns the upper-section bonus and whether it has been earned.
func (s *Scorecard) Bonus() (int, bool) {
	return s.bonus.value, s.bonus.filled
}

// Open lists the categories that have not been played yet.
func (s *Scorecard) Open() []Category {
	open := []Category{}
	for _, c := range Categories() {
		if !s.slots[c].filled {
			open = append(open, c)
		}
	}
	return open
}

// Complete reports whether every category holds a score.
func (s *Scorecard) Complete() bool {
	return len(s.Open()) == 0
}

func (s *Scorecard) UpperScoreWithoutBonus() int {
	total := 0
	for c := Aces; c <= Sixes; c++ {
		total += s.slots[c].value
	}
	return total
}

func (s *Scorecard) UpperTotal() int {
	return s.UpperScoreWithoutBonus() + s.bonus.value
}

func (s *Scorecard) LowerTotal() int {
	total := 0
	for c := ThreeOfAKind; c <= Chance; c++ {
		total += s.slots[c].value
	}
	return total
}

func (s *Scorecard) GrandTotal() int {
	return s.UpperTotal() + s.LowerTotal()
}
