package poker

import "github.com/pterm/pterm"

// Suit of a card. Suits carry no strength when ranking hands.
type Suit uint8

// Suit constants (0-3), in the same order used by the reference evaluator.
const (
	Clubs    Suit = iota // ♣ (black)
	Diamonds             // ♦ (red)
	Hearts               // ♥ (red)
	Spades               // ♠ (black)
)

// Suits lists the four suits in canonical order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// SuitFromSymbol returns the suit written as symbol ('C', 'D', 'H', 'S').
func SuitFromSymbol(symbol byte) (Suit, error) {
	switch symbol {
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	}
	return 0, invalidSymbol("suit", string([]byte{symbol}))
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// Symbol returns the single character used for s in hand notation.
func (s Suit) Symbol() byte {
	switch s {
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	}
	return '?'
}

// Pretty returns the colored suit glyph used by terminal output.
func (s Suit) Pretty() string {
	switch s {
	case Clubs:
		return pterm.Black("♣")
	case Diamonds:
		return pterm.LightRed("♦")
	case Hearts:
		return pterm.LightRed("♥")
	case Spades:
		return pterm.Black("♠")
	}
	return "?"
}

func (s Suit) String() string {
	return string(s.Symbol())
}
