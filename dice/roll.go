// Package dice models the dice of a single turn: the values on the table,
// how many times they have been thrown, and the per-turn roll budget.
package dice

import (
	"strconv"
	"strings"
)

const (
	MinFace = 1
	MaxFace = 6
)

// Roll is an ordered set of die values. Order only matters for choosing
// which dice to reroll; scoring treats a Roll as a multiset.
type Roll []int

// Counts returns how many dice show each face, indexed by face value.
// Index 0 is unused.
func (r Roll) Counts() [MaxFace + 1]int {
	var counts [MaxFace + 1]int
	for _, v := range r {
		if v >= MinFace && v <= MaxFace {
			counts[v]++
		}
	}
	return counts
}

func (r Roll) Sum() int {
	s := 0
	for _, v := range r {
		s += v
	}
	return s
}

func (r Roll) Copy() Roll {
	if r == nil {
		return nil
	}
	c := make(Roll, len(r))
	copy(c, r)
	return c
}

func (r Roll) String() string {
	vals := make([]string, len(r))
	for i, v := range r {
		vals[i] = strconv.Itoa(v)
	}
	return strings.Join(vals, " ")
}

func rollDie(src Source) int {
	return src.Intn(MaxFace) + MinFace
}
