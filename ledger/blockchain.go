package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/luca-patrignani/showdown/domain/poker"
)

// Ledger is a hash-chained list of blocks. It is safe for concurrent use.
type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewLedger creates a ledger holding only the genesis block.
// The genesis block has index 0 and previous hash "0".
func NewLedger() *Ledger {
	l := &Ledger{now: time.Now}

	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  "0",
		Record:    Record{Outcome: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = []Block{genesis}
	return l
}

// NewRecord builds the record of a match between black and white.
func NewRecord(black, white poker.Hand, res poker.ComparisonResult) Record {
	return Record{
		Black:   black.String(),
		White:   white.String(),
		Winner:  res.Winner.String(),
		Outcome: res.Describe(),
	}
}

// Append adds a block holding rec to the end of the chain and returns it.
// The optional metadata is stored alongside the record.
func (l *Ledger) Append(rec Record, meta ...Metadata) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec,
	}
	if len(meta) > 0 {
		b.Metadata = meta[0]
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain.
func (l *Ledger) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Verify validates the integrity of the entire chain by checking the genesis
// block and each subsequent block's index, previous hash and hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return verify(l.blocks)
}

func verify(blocks []Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if blocks[0].Index != 0 || blocks[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis block")
	}
	if blocks[0].Hash != calculateHash(blocks[0]) {
		return fmt.Errorf("invalid genesis hash")
	}
	for i := 1; i < len(blocks); i++ {
		if err := validateBlock(blocks[i], blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// Save writes the chain as indented JSON.
func (l *Ledger) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l.Blocks())
}

// Load reads a chain written by Save and verifies it.
func Load(r io.Reader) (*Ledger, error) {
	var blocks []Block
	if err := json.NewDecoder(r).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	if err := verify(blocks); err != nil {
		return nil, err
	}
	return &Ledger{blocks: blocks, now: time.Now}, nil
}

// validateBlock checks index continuity, previous hash linkage and the
// block's own hash.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expected := calculateHash(current)
	if current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, record and metadata. Record and metadata are JSON
// marshaled before hashing.
func calculateHash(b Block) string {
	recordBytes, _ := json.Marshal(b.Record)
	metaBytes, _ := json.Marshal(b.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		b.Index,
		b.Timestamp,
		b.PrevHash,
		string(recordBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
