package poker

import (
	"fmt"
	"unicode/utf8"
)

// Card represents a playing card with rank and suit.
// Card is comparable: two cards are equal iff rank and suit are equal, so
// cards can be used directly as map keys.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: Two through Ace
//   - suit: Clubs, Diamonds, Hearts or Spades
//
// Returns the Card or an error if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCard parses a two character token such as "AH" or "TD".
// The first character is the rank symbol and the second the suit symbol.
// Length is counted in characters, so a single multi-byte glyph is a
// malformed card rather than a bad rank.
func ParseCard(token string) (Card, error) {
	if utf8.RuneCountInString(token) != 2 {
		return Card{}, parseErrorf(ErrMalformedCard, token, "invalid card format %q: expected 2 characters", token)
	}
	_, n := utf8.DecodeRuneInString(token)
	rank, err := rankFromText(token[:n])
	if err != nil {
		return Card{}, &ParseError{Kind: ErrInvalidSymbol, Token: token, Msg: fmt.Sprintf("card %q", token), Err: err}
	}
	suit, err := suitFromText(token[n:])
	if err != nil {
		return Card{}, &ParseError{Kind: ErrInvalidSymbol, Token: token, Msg: fmt.Sprintf("card %q", token), Err: err}
	}
	return Card{rank: rank, suit: suit}, nil
}

func rankFromText(sym string) (Rank, error) {
	if len(sym) != 1 {
		return 0, invalidSymbol("rank", sym)
	}
	return RankFromSymbol(sym[0])
}

func suitFromText(sym string) (Suit, error) {
	if len(sym) != 1 {
		return 0, invalidSymbol("suit", sym)
	}
	return SuitFromSymbol(sym[0])
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the two character notation of the card, the inverse of ParseCard.
func (c Card) String() string {
	return string([]byte{c.rank.Symbol(), c.suit.Symbol()})
}

// Pretty returns a human-readable representation using colored suit glyphs
// (♣, ♦, ♥, ♠).
func (c Card) Pretty() string {
	return c.rank.String() + c.suit.Pretty()
}
