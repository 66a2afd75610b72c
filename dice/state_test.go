package dice

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

// cycleSource hands out a fixed sequence of draws, wrapping around.
type cycleSource struct {
	draws []int
	pos   int
}

func (c *cycleSource) Intn(n int) int {
	v := c.draws[c.pos%len(c.draws)] % n
	c.pos++
	return v
}

func facesSource(faces ...int) *cycleSource {
	draws := make([]int, len(faces))
	for i, f := range faces {
		draws[i] = f - 1
	}
	return &cycleSource{draws: draws}
}

func TestNewStateValidation(t *testing.T) {
	is := is.New(t)
	_, err := NewState(0, 3, nil)
	is.True(errors.Is(err, ErrInvalidConfig))
	_, err = NewState(5, 0, nil)
	is.True(errors.Is(err, ErrInvalidConfig))

	s, err := NewState(DefaultNumDice, DefaultMaxRolls, nil)
	is.NoErr(err)
	is.Equal(s.RollsTaken(), 0)
	is.Equal(s.MaxRolls(), 3)
	is.Equal(len(s.Dice()), 0)
}

func TestRollAll(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, facesSource(1, 2, 3, 4, 5))
	is.NoErr(err)
	is.True(s.RollAll())
	is.Equal(s.Dice(), Roll{1, 2, 3, 4, 5})
	is.Equal(s.RollsTaken(), 1)
}

func TestRollAllNeverExceedsBudget(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, FrandSource)
	is.NoErr(err)
	for i := 0; i < 10; i++ {
		s.RollAll()
		is.True(s.RollsTaken() <= s.MaxRolls())
	}
	is.Equal(s.RollsTaken(), 3)
	is.True(s.Exhausted())
	before := s.Dice()
	is.True(!s.RollAll())
	is.Equal(s.Dice(), before)
}

func TestDieValuesInRange(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 1, FrandSource)
	is.NoErr(err)
	for i := 0; i < 2000; i++ {
		s.Reset()
		s.RollAll()
		for _, v := range s.Dice() {
			is.True(v >= MinFace && v <= MaxFace)
		}
	}
}

func TestRerollSubsetKeepsOtherPositions(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, facesSource(1, 2, 3, 4, 5, 6, 6))
	is.NoErr(err)
	s.RollAll()
	is.NoErr(s.RerollSubset([]int{1, 3}))
	is.Equal(s.Dice(), Roll{1, 6, 3, 6, 5})
	is.Equal(s.RollsTaken(), 2)
}

func TestRerollSubsetDuplicateIndices(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, facesSource(1, 1, 1, 1, 1, 4, 5))
	is.NoErr(err)
	s.RollAll()
	is.NoErr(s.RerollSubset([]int{2, 2}))
	is.Equal(s.Dice(), Roll{1, 1, 4, 1, 1})
	is.Equal(s.RollsTaken(), 2)
}

func TestRerollEmptySelectionSpendsRoll(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, facesSource(2, 3, 4, 5, 6))
	is.NoErr(err)
	s.RollAll()
	is.NoErr(s.RerollSubset(nil))
	is.Equal(s.Dice(), Roll{2, 3, 4, 5, 6})
	is.Equal(s.RollsTaken(), 2)
}

func TestRerollOutOfRange(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, FrandSource)
	is.NoErr(err)
	s.RollAll()
	for _, sel := range [][]int{{5}, {0, 7}, {-1}, {100}} {
		err := s.RerollSubset(sel)
		is.True(errors.Is(err, ErrInvalidSelection))
	}
	is.Equal(s.RollsTaken(), 1)
}

func TestRerollIndexErrorBeatsBudget(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 1, FrandSource)
	is.NoErr(err)
	s.RollAll()
	is.True(s.Exhausted())
	err = s.RerollSubset([]int{5})
	is.True(errors.Is(err, ErrInvalidSelection))
	err = s.RerollSubset([]int{0})
	is.True(errors.Is(err, ErrRollBudgetExhausted))
}

func TestRerollBeforeFirstRoll(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, FrandSource)
	is.NoErr(err)
	is.True(errors.Is(s.RerollSubset([]int{0}), ErrNoDice))
	is.Equal(s.RollsTaken(), 0)
}

func TestReset(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 2, FrandSource)
	is.NoErr(err)
	s.RollAll()
	s.RollAll()
	s.Reset()
	is.Equal(s.RollsTaken(), 0)
	is.Equal(s.MaxRolls(), 2)
	is.True(!s.HasDice())
	is.Equal(s.RollsLeft(), 2)
}

func TestDiceReturnsCopy(t *testing.T) {
	is := is.New(t)
	s, err := NewState(5, 3, facesSource(3))
	is.NoErr(err)
	s.RollAll()
	d := s.Dice()
	d[0] = 6
	is.Equal(s.Dice()[0], 3)
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	is := is.New(t)
	seed := SeedFromPhrase("full house")
	a, err := NewState(5, 3, NewSeededSource(seed))
	is.NoErr(err)
	b, err := NewState(5, 3, NewSeededSource(seed))
	is.NoErr(err)
	for i := 0; i < 3; i++ {
		a.RollAll()
		b.RollAll()
		is.Equal(a.Dice(), b.Dice())
	}
	is.True(SeedFromPhrase("a") != SeedFromPhrase("b"))
	is.Equal(SourceFromPhrase(""), FrandSource)
}

func TestRollHelpers(t *testing.T) {
	is := is.New(t)
	r := Roll{6, 6, 5, 1, 6}
	is.Equal(r.Sum(), 24)
	counts := r.Counts()
	is.Equal(counts[6], 3)
	is.Equal(counts[5], 1)
	is.Equal(counts[2], 0)
	is.Equal(r.String(), "6 6 5 1 6")
}
