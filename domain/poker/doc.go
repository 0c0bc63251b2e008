// Package poker implements the domain logic for five-card showdowns: card and
// hand notation, validation, ranking and head-to-head comparison.
//
// # Core Types
//
// Card: a rank and a suit, written as two characters such as "AH" or "TD".
//
// Hand: five distinct cards, immutable once built.
//
// HandRank: the category of a hand plus its kickers, strongest first.
//
// ComparisonResult: the winning side of a comparison with the deciding rank
// and the rank it beat.
//
// # Notation
//
// Ranks are written 2-9, T, J, Q, K, A and suits C, D, H, S, uppercase only.
// A hand is five card tokens separated by whitespace:
//
//	h, err := poker.ParseHand("2H 3D 5S 9C KD")
//
// # Ranking
//
// Hands are classified by a table of category detectors evaluated from the
// strongest category down. Only the high card rule is active, so every hand
// ranks as High Card with all five ranks as kickers. Compare always checks the
// category before the kickers.
//
// All values in this package are immutable and safe for concurrent use.
package poker
