package cards

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RankTestSuite struct {
	suite.Suite
}

func TestRankSuite(t *testing.T) {
	suite.Run(t, new(RankTestSuite))
}

func (s *RankTestSuite) TestParseRankValid() {
	for rank := 1; rank <= RankLimit; rank++ {
		parsed, err := ParseRank(string(rune('0' + rank)))
		s.NoError(err, "rank %d should parse", rank)
		s.Equal(rank, parsed)
	}
}

func (s *RankTestSuite) TestParseRankErrors() {
	testCases := []struct {
		name     string
		input    string
		wantCode ErrorCode
	}{
		{"empty string", "", ErrRankEmpty},
		{"letter", "R", ErrRankNotInteger},
		{"decimal", "1.5", ErrRankNotInteger},
		{"negative sign", "-1", ErrRankNotInteger},
		{"positive sign", "+2", ErrRankNotInteger},
		{"whitespace", " 1", ErrRankNotInteger},
		{"zero", "0", ErrRankOutOfRange},
		{"above limit", "9", ErrRankOutOfRange},
		{"just above limit", "6", ErrRankOutOfRange},
		{"far above limit", "100", ErrRankOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := ParseRank(tc.input)
			s.Error(err)
			s.True(IsCardError(err, tc.wantCode),
				"ParseRank(%q) should fail with %s, got %v", tc.input, tc.wantCode, err)
		})
	}
}
