package dice

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	DefaultNumDice  = 5
	DefaultMaxRolls = 3
)

var (
	ErrInvalidSelection    = errors.New("selected dice are out of range")
	ErrRollBudgetExhausted = errors.New("no rolls left this turn")
	ErrNoDice              = errors.New("dice have not been rolled yet")
	ErrInvalidConfig       = errors.New("invalid dice configuration")
)

// State tracks the dice for one turn. The roll counter never exceeds
// maxRolls, and dice are empty only before the first roll of a turn.
type State struct {
	src        Source
	numDice    int
	maxRolls   int
	rollsTaken int
	dice       Roll
}

func NewState(numDice, maxRolls int, src Source) (*State, error) {
	if numDice < 1 {
		return nil, fmt.Errorf("%w: need at least one die, got %d", ErrInvalidConfig, numDice)
	}
	if maxRolls < 1 {
		return nil, fmt.Errorf("%w: need at least one roll per turn, got %d", ErrInvalidConfig, maxRolls)
	}
	if src == nil {
		src = FrandSource
	}
	return &State{src: src, numDice: numDice, maxRolls: maxRolls}, nil
}

// RollAll throws every die. It does nothing once the roll budget for the
// turn is spent; the return value says whether the dice were thrown.
func (s *State) RollAll() bool {
	if s.Exhausted() {
		log.Debug().Int("rolls", s.rollsTaken).Msg("roll-all-ignored")
		return false
	}
	d := make(Roll, s.numDice)
	for i := range d {
		d[i] = rollDie(s.src)
	}
	s.dice = d
	s.rollsTaken++
	log.Debug().Str("dice", s.dice.String()).Int("rolls", s.rollsTaken).Msg("rolled")
	return true
}

// RerollSubset throws again the dice at the given zero-based positions and
// leaves the others where they are. Index errors are reported before the
// budget is checked. Repeated indices are rerolled once. An empty
// selection still spends a roll.
func (s *State) RerollSubset(indices []int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= s.numDice {
			return fmt.Errorf("%w: die %d of %d", ErrInvalidSelection, idx+1, s.numDice)
		}
	}
	if s.Exhausted() {
		return ErrRollBudgetExhausted
	}
	if len(s.dice) == 0 {
		return ErrNoDice
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		s.dice[idx] = rollDie(s.src)
	}
	s.rollsTaken++
	log.Debug().Ints("rerolled", indices).Str("dice", s.dice.String()).
		Int("rolls", s.rollsTaken).Msg("rerolled")
	return nil
}

// Reset clears the table for the next turn.
func (s *State) Reset() {
	s.dice = nil
	s.rollsTaken = 0
}

// Dice returns a copy of the current dice.
func (s *State) Dice() Roll {
	return s.dice.Copy()
}

func (s *State) HasDice() bool {
	return len(s.dice) > 0
}

func (s *State) RollsTaken() int {
	return s.rollsTaken
}

func (s *State) MaxRolls() int {
	return s.maxRolls
}

func (s *State) NumDice() int {
	return s.numDice
}

func (s *State) RollsLeft() int {
	return s.maxRolls - s.rollsTaken
}

func (s *State) Exhausted() bool {
	return s.rollsTaken >= s.maxRolls
}
