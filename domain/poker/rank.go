package poker

import "strconv"

// Rank is the face value of a card. The zero value is not a valid rank.
type Rank uint8

// Card ranks, ordered by strength.
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from weakest to strongest.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// RankFromSymbol returns the rank written as symbol ('2'..'9', 'T', 'J', 'Q', 'K', 'A').
func RankFromSymbol(symbol byte) (Rank, error) {
	switch symbol {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(symbol - '0'), nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	}
	return 0, invalidSymbol("rank", string([]byte{symbol}))
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Strength returns the numeric strength of the rank, 2 for Two up to 14 for Ace.
func (r Rank) Strength() int {
	return int(r)
}

// Symbol returns the single character used for r in hand notation.
func (r Rank) Symbol() byte {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return '0' + byte(r)
	case Ten:
		return 'T'
	case Jack:
		return 'J'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	case Ace:
		return 'A'
	}
	return '?'
}

// DisplayName returns the name used when announcing a winner:
// "2".."10" for number cards, "Jack", "Queen", "King" and "Ace" for the rest.
func (r Rank) DisplayName() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return strconv.Itoa(int(r))
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	return "Rank(" + strconv.Itoa(int(r)) + ")"
}

func (r Rank) String() string {
	return string(r.Symbol())
}
