package ledger

// Block is one played match in the ledger.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Record    Record   `json:"record"`
	Metadata  Metadata `json:"metadata"`
}

// Record is the outcome of a single showdown.
type Record struct {
	Black   string `json:"black"`
	White   string `json:"white"`
	Winner  string `json:"winner"`
	Outcome string `json:"outcome"`
}

type Metadata struct {
	Source string            `json:"source,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}
