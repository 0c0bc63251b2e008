// Package ledger keeps an append-only record of played showdowns.
//
// # Core Components
//
// Ledger: an append-only log of match results with SHA-256 hash chaining
// for tamper detection.
//
// Block: a single match result with its position in the chain and the hash
// of the block before it.
//
// # Usage
//
// Create a ledger, append one record per match, then Save it as JSON. Load
// reads a saved ledger back and verifies the whole chain before returning it.
package ledger
