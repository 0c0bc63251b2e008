package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandWellFormed(t *testing.T) {
	h, err := ParseHand("AH KD 3C TD 9S")
	require.NoError(t, err)

	assert.Len(t, h.Cards(), 5)
	assert.True(t, h.ContainsCard(Ace, Hearts))
	assert.True(t, h.ContainsCard(King, Diamonds))
	assert.True(t, h.ContainsCard(Three, Clubs))
	assert.True(t, h.ContainsCard(Ten, Diamonds))
	assert.True(t, h.ContainsCard(Nine, Spades))
	assert.False(t, h.ContainsCard(Ace, Spades))
}

func TestParseHandValid(t *testing.T) {
	for _, s := range []string{
		"2H 3D 5S 9C KD",
		"AH KD 3C TD 9S",
		"AS KS QS JS TS",
		"2C 2D 2H 2S 3C",
	} {
		t.Run(s, func(t *testing.T) {
			h, err := ParseHand(s)
			require.NoError(t, err)
			assert.Len(t, h.Cards(), 5)
		})
	}
}

func TestParseHandWhitespace(t *testing.T) {
	h, err := ParseHand("  AH\tKD   3C\n TD 9S  ")
	require.NoError(t, err)
	assert.Equal(t, "AH KD 3C TD 9S", h.String())
}

func TestParseHandRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2H 3D 5S 9C KD",
		"AH KD 9C 7D 4S",
		"TC JD QH KS AC",
	} {
		h, err := ParseHand(s)
		require.NoError(t, err)
		assert.Equal(t, s, h.String())

		again, err := ParseHand(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, again)
	}
}

func TestParseHandRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		message string
	}{
		{"empty", "", ErrEmptyInput, "empty"},
		{"blank", "   \t ", ErrEmptyInput, "empty"},
		{"one card", "AH", ErrWrongCardCount, "exactly 5 cards, got 1"},
		{"four cards", "AH KD 3C TD", ErrWrongCardCount, "exactly 5 cards, got 4"},
		{"six cards", "AH KD 3C TD 9S 2H", ErrWrongCardCount, "exactly 5 cards, got 6"},
		{"duplicate first", "AH AH 3C TD 9S", ErrDuplicateCard, "duplicate"},
		{"duplicate many", "2H 2H 2H 3C 4D", ErrDuplicateCard, "duplicate"},
		{"duplicate kings", "KD KD QS JH TC", ErrDuplicateCard, "duplicate"},
		{"long token", "AH KDD 3C TD 9S", ErrInvalidCardToken, "KDD"},
		{"bad suit", "AX KD 3C TD 9S", ErrInvalidCardToken, "invalid suit"},
		{"bad rank", "1H KD 3C TD 9S", ErrInvalidCardToken, "invalid rank"},
		{"bad rank letter", "XH KD 3C TD 9S", ErrInvalidCardToken, "invalid rank"},
		{"garbage", "AH KD ?? TD 9S", ErrInvalidCardToken, "??"},
		{"single glyph", "AH KD 9C 7D Ä", ErrMalformedCard, "expected 2 characters"},
		{"glyph rank", "AH KD 9C 7D ♥H", ErrInvalidSymbol, `invalid rank symbol "♥"`},
		{"raw byte suit", "AH KD 9C 7D 4\xff", ErrInvalidSymbol, `invalid suit symbol '\xff'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHand(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseHandInvalidTokenWrapsCause(t *testing.T) {
	_, err := ParseHand("AH KDD 3C TD 9S")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCardToken)
	assert.ErrorIs(t, err, ErrMalformedCard)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "KDD", pe.Token)

	_, err = ParseHand("AH KD 3C TD 9Z")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestNewHand(t *testing.T) {
	cards := MustParseHand("AH KD 9C 7D 4S").Cards()

	h, err := NewHand(cards...)
	require.NoError(t, err)
	assert.Equal(t, "AH KD 9C 7D 4S", h.String())

	cards[0] = cards[1]
	assert.Equal(t, "AH KD 9C 7D 4S", h.String(), "hand must not share the caller's slice")

	_, err = NewHand(cards...)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = NewHand(cards[:4]...)
	assert.ErrorIs(t, err, ErrWrongCardCount)

	_, err = NewHand(Card{}, cards[1], cards[2], cards[3], cards[4])
	assert.ErrorIs(t, err, ErrMalformedCard)
	assert.Contains(t, err.Error(), "position 0: rank 0, suit 0")
	assert.NotContains(t, err.Error(), "??")
}

func TestParseHandQuotesSymbolsAsWritten(t *testing.T) {
	_, err := ParseHand("AH KD 9C 7D 4\xff")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "ÿ")

	_, err = ParseHand("AH KD 9C 7D \xc3H")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Contains(t, err.Error(), `'\xc3'`)
	assert.NotContains(t, err.Error(), "Ã")
}

func TestHandCardsIsACopy(t *testing.T) {
	h := MustParseHand("AH KD 9C 7D 4S")

	cards := h.Cards()
	cards[0], _ = NewCard(Two, Clubs)
	cards = cards[:0]
	cards = append(cards, h.Card(1), h.Card(1))
	_ = cards

	assert.Equal(t, "AH KD 9C 7D 4S", h.String())
	assert.Len(t, h.Cards(), 5)
	assert.True(t, h.ContainsCard(Ace, Hearts))
	assert.False(t, h.ContainsCard(Two, Clubs))
}

func TestMustParseHandPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseHand("AH AH 3C TD 9S") })
}
