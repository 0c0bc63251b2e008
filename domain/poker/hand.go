package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is an immutable set of five distinct cards kept in the order they
// were given. The zero value is not a valid hand; build one with ParseHand
// or NewHand.
type Hand struct {
	cards [HandSize]Card
}

// ParseHand parses five whitespace separated card tokens, e.g. "AH KD 9C 7D 4S".
// Leading and trailing whitespace is ignored and tokens may be separated by
// any run of whitespace.
func ParseHand(s string) (Hand, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Hand{}, parseErrorf(ErrEmptyInput, "", "hand string cannot be empty")
	}
	if len(tokens) != HandSize {
		return Hand{}, wrongCount(len(tokens))
	}

	var cards [HandSize]Card
	for i, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			return Hand{}, &ParseError{
				Kind:  ErrInvalidCardToken,
				Token: token,
				Msg:   fmt.Sprintf("invalid card token %q", token),
				Err:   err,
			}
		}
		cards[i] = c
	}
	return newHand(cards)
}

// MustParseHand is like ParseHand but panics on error. Meant for fixtures.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// NewHand builds a hand from exactly five distinct cards. The slice is copied.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, wrongCount(len(cards))
	}
	var arr [HandSize]Card
	for i, c := range cards {
		if !c.rank.Valid() || !c.suit.Valid() {
			return Hand{}, parseErrorf(ErrMalformedCard, fmt.Sprintf("%d/%d", c.rank, c.suit),
				"invalid card at position %d: rank %d, suit %d", i, c.rank, c.suit)
		}
		arr[i] = c
	}
	return newHand(arr)
}

func newHand(cards [HandSize]Card) (Hand, error) {
	seen := make(map[Card]struct{}, HandSize)
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return Hand{}, parseErrorf(ErrDuplicateCard, c.String(), "hand contains duplicate card %s", c)
		}
		seen[c] = struct{}{}
	}
	return Hand{cards: cards}, nil
}

func wrongCount(got int) error {
	return parseErrorf(ErrWrongCardCount, "", "a hand must contain exactly %d cards, got %d", HandSize, got)
}

// Cards returns a copy of the hand's cards in their original order.
// Modifying the returned slice never affects the hand.
func (h Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h.cards[:])
	return out
}

// Card returns the i-th card of the hand. It panics if i is out of range.
func (h Hand) Card(i int) Card {
	return h.cards[i]
}

// ContainsCard reports whether the hand holds the card of the given rank and suit.
func (h Hand) ContainsCard(rank Rank, suit Suit) bool {
	target := Card{rank: rank, suit: suit}
	for _, c := range h.cards {
		if c == target {
			return true
		}
	}
	return false
}

// String returns the cards joined by single spaces, in hand order.
func (h Hand) String() string {
	tokens := make([]string, HandSize)
	for i, c := range h.cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// Pretty renders the hand with colored suit glyphs.
func (h Hand) Pretty() string {
	tokens := make([]string, HandSize)
	for i, c := range h.cards {
		tokens[i] = c.Pretty()
	}
	return strings.Join(tokens, " - ")
}
