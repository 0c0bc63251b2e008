package deck

import (
	"crypto/cipher"
	"errors"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/showdown/domain/poker"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrDeckExhausted is returned when too few cards remain to deal a hand.
var ErrDeckExhausted = errors.New("not enough cards left in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a standard 52 card deck dealt from the top.
type Deck struct {
	cards     [DeckSize]poker.Card
	lastDrawn int
}

// NewDeck returns a deck in canonical order: clubs, diamonds, hearts,
// spades, each from two to ace.
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, s := range poker.Suits {
		for _, r := range poker.Ranks {
			c, err := poker.NewCard(r, s)
			if err != nil {
				panic(err)
			}
			d.cards[i] = c
			i++
		}
	}
	return d
}

// Remaining returns how many cards are left to deal.
func (d *Deck) Remaining() int {
	return DeckSize - d.lastDrawn
}

// Cards returns a copy of the undealt cards, top first.
func (d *Deck) Cards() []poker.Card {
	out := make([]poker.Card, d.Remaining())
	copy(out, d.cards[d.lastDrawn:])
	return out
}

// DrawCard takes the top card of the deck.
func (d *Deck) DrawCard() (poker.Card, error) {
	if d.Remaining() == 0 {
		return poker.Card{}, ErrDeckExhausted
	}
	c := d.cards[d.lastDrawn]
	d.lastDrawn++
	return c, nil
}

// DealHand takes the next five cards as a hand. A deck never holds the same
// card twice, so the hand is always valid.
func (d *Deck) DealHand() (poker.Hand, error) {
	if d.Remaining() < poker.HandSize {
		return poker.Hand{}, ErrDeckExhausted
	}
	h, err := poker.NewHand(d.cards[d.lastDrawn : d.lastDrawn+poker.HandSize]...)
	if err != nil {
		return poker.Hand{}, err
	}
	d.lastDrawn += poker.HandSize
	return h, nil
}

// RandomStream returns a cryptographically secure random stream.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// NewSeededStream returns a deterministic stream derived from seed. Decks
// shuffled with streams built from the same seed come out in the same order.
func NewSeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}
