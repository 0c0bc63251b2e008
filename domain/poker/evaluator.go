package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns the full poker description of the hand ("pair of kings",
// "ace-high flush", ...) computed by the reference evaluator. It is
// informational only: Compare does not consult it.
func (h Hand) Describe() (string, error) {
	c, err := h.referenceCards()
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

// ReferenceScore returns the reference evaluator's score for the hand.
// Higher scores are stronger hands.
func (h Hand) ReferenceScore() (int16, error) {
	c, err := h.referenceCards()
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&c), nil
}

func (h Hand) referenceCards() ([5]poker.Card, error) {
	var out [5]poker.Card
	for i, c := range h.cards {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(referenceRank(c.rank)))
		if err != nil {
			return [5]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

// referenceRank maps a rank to the 1-13 numbering (ace low) of the reference
// evaluator.
func referenceRank(r Rank) uint8 {
	if r == Ace {
		return 1
	}
	return uint8(r)
}
