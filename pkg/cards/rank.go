package cards

import (
	"fmt"
	"strconv"
)

// RankLimit is the highest rank a card can carry
const RankLimit = 5

// ParseRank converts text into a validated rank. Signs and decimal points are
// rejected as non-integers since ranks are always positive whole numbers.
func ParseRank(text string) (int, error) {
	if text == "" {
		return 0, NewCardError(ErrRankEmpty, "rank string expected")
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, NewCardError(ErrRankNotInteger,
				fmt.Sprintf("rank %q must be an integer", text))
		}
	}
	rank, err := strconv.Atoi(text)
	if err != nil {
		return 0, WrapError(ErrRankNotInteger,
			fmt.Sprintf("rank %q must be an integer", text), err)
	}
	if rank < 1 || rank > RankLimit {
		return 0, NewCardError(ErrRankOutOfRange,
			fmt.Sprintf("rank %d is outside 1..%d", rank, RankLimit))
	}
	return rank, nil
}
