package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle puts every card back in the deck and shuffles it with a
// Fisher-Yates pass driven by stream.
func (d *Deck) Shuffle(stream cipher.Stream) {
	d.lastDrawn = 0
	perm := permutation(DeckSize, stream)
	shuffled := d.cards
	for i, p := range perm {
		shuffled[i] = d.cards[p]
	}
	d.cards = shuffled
}

// permutation returns a uniform random permutation of [0, n).
func permutation(n int, stream cipher.Stream) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
