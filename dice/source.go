package dice

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// Source is where dice get their randomness. Every die draw goes through
// exactly one Intn(6) call.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// FrandSource draws from the process-wide frand generator. It is safe for
// concurrent use.
var FrandSource Source = frandSource{}

// NewSeededSource returns a deterministic source. Two sources built from
// the same seed produce the same sequence of draws. The returned source is
// not safe for concurrent use.
func NewSeededSource(seed [32]byte) Source {
	return frand.NewCustom(seed[:], 1024, 12)
}

// SeedFromPhrase stretches an arbitrary string into a 32-byte seed.
func SeedFromPhrase(phrase string) [32]byte {
	var seed [32]byte
	for i := 0; i < 4; i++ {
		h := xxhash.Sum64String(strconv.Itoa(i) + ":" + phrase)
		binary.LittleEndian.PutUint64(seed[i*8:], h)
	}
	return seed
}

// SourceFromPhrase returns FrandSource for an empty phrase, and a seeded
// source otherwise.
func SourceFromPhrase(phrase string) Source {
	if phrase == "" {
		return FrandSource
	}
	return NewSeededSource(SeedFromPhrase(phrase))
}
