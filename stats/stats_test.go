package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
		min    float64
		max    float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Min(), c.min)
		is.Equal(s.Max(), c.max)
		is.Equal(s.Iterations(), len(c.scores))
	}
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	scores := []float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}
	whole := &Statistic{}
	a, b := &Statistic{}, &Statistic{}
	for i, v := range scores {
		whole.Push(v)
		if i < 4 {
			a.Push(v)
		} else {
			b.Push(v)
		}
	}
	merged := &Statistic{}
	merged.Merge(a)
	merged.Merge(b)
	merged.Merge(&Statistic{})
	is.Equal(merged.Iterations(), whole.Iterations())
	is.True(FuzzyEqual(merged.Mean(), whole.Mean()))
	is.True(FuzzyEqual(merged.Stdev(), whole.Stdev()))
	is.Equal(merged.Min(), 10.0)
	is.Equal(merged.Max(), 124.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489))

	s := &Statistic{}
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	is.True(FuzzyEqual(MarginOfError(s, 95), ZVal(95)*s.StandardError()))
}
