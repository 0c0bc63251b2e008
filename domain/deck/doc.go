// Package deck deals five-card hands from a shuffled 52 card deck.
//
// Shuffling is driven by a cipher.Stream from the kyber Ed25519 suite:
// RandomStream for live games, NewSeededStream for reproducible deals.
package deck
