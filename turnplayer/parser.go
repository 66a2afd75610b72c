package turnplayer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadSelection = errors.New("could not parse dice selection")

// ParseSelection turns a comma-separated list of 1-based dice positions,
// such as "1,3,5", into zero-based indices. If any token is not a
// non-negative integer the whole selection is rejected. Range checking is
// left to the dice themselves, so "0" parses to -1 and is refused there.
func ParseSelection(selection string) ([]int, error) {
	tokens := strings.Split(selection, ",")
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.ParseUint(tok, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a dice position", ErrBadSelection, tok)
		}
		indices = append(indices, int(n)-1)
	}
	return indices, nil
}
