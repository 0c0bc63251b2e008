package showdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/showdown/domain/poker"
)

func TestParseLine(t *testing.T) {
	m, err := ParseLine("Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH")
	require.NoError(t, err)
	assert.Equal(t, "2H 3D 5S 9C KD", m.Black.String())
	assert.Equal(t, "2C 3H 4S 8C AH", m.White.String())
	assert.Equal(t, "White wins - high card: Ace", m.Play().Describe())
	assert.Equal(t, "Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH", m.String())
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind error
		msg  string
	}{
		{"no labels", "2H 3D 5S 9C KD 2C 3H 4S 8C AH", ErrMalformedLine, "Black:"},
		{"white first", "White: 2C 3H 4S 8C AH Black: 2H 3D 5S 9C KD", ErrMalformedLine, "Black:"},
		{"missing white", "Black: 2H 3D 5S 9C KD", ErrMalformedLine, "White:"},
		{"bad black", "Black: 2H 3D 5S 9C  White: 2C 3H 4S 8C AH", poker.ErrWrongCardCount, "black hand"},
		{"bad white", "Black: 2H 3D 5S 9C KD  White: 2C 2C 4S 8C AH", poker.ErrDuplicateCard, "white hand"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadMatches(t *testing.T) {
	input := `# kata sample
Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH

Black: 2H 3D 5S 9C KD  White: 2D 3H 5C 9S KH
Black: AH KD 9C 7D 4S  White: AH KD 9C 7D 3S
`
	matches, err := ReadMatches(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, matches, 3)

	want := []string{
		"White wins - high card: Ace",
		"Tie",
		"Black wins - high card: 4",
	}
	for i, m := range matches {
		assert.Equal(t, want[i], m.Play().Describe())
	}
}

func TestReadMatchesReportsLine(t *testing.T) {
	input := "Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH\n\nBlack: AH AH 3C TD 9S  White: 2C 3H 4S 8C AH\n"
	_, err := ReadMatches(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "duplicate")
}
