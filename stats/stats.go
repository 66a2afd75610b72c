// Package stats keeps running statistics over game scores without storing
// every sample.
package stats

import (
	"fmt"
	"math"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates mean and variance with Welford's algorithm, plus
// the extremes seen so far.
type Statistic struct {
	n    int
	last float64
	min  float64
	max  float64

	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	s.last = val
	if s.n == 1 {
		s.min, s.max = val, val
		s.mean = val
		s.m2 = 0
		return
	}
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

// Merge folds o into s as if every sample of o had been pushed into s.
func (s *Statistic) Merge(o *Statistic) {
	if o.n == 0 {
		return
	}
	if s.n == 0 {
		*s = *o
		return
	}
	n := s.n + o.n
	delta := o.mean - s.mean
	s.m2 += o.m2 + delta*delta*float64(s.n)*float64(o.n)/float64(n)
	s.mean += delta * float64(o.n) / float64(n)
	s.min = math.Min(s.min, o.min)
	s.max = math.Max(s.max, o.max)
	s.last = o.last
	s.n = n
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Iterations() int {
	return s.n
}

func (s *Statistic) String() string {
	return fmt.Sprintf("n=%d mean=%.2f stdev=%.2f min=%.0f max=%.0f",
		s.n, s.Mean(), s.Stdev(), s.Min(), s.Max())
}
