package model

// Block is one self-contained annotation unit as produced by the segmenter:
// the paragraph's source text plus its token and per-token label sequences.
type Block struct {
	Text   string     // Plain paragraph text (prefix stripped)
	Tokens []string   // Surface tokens, one per annotation line
	Labels [][]string // Pipe-split label set per token position
}

// Paragraph is the output record for one resolved block
type Paragraph struct {
	Text   string     `json:"text"`   // Paragraph source text
	Tokens []string   `json:"tokens"` // Token sequence the span indices refer to
	Corefs []*Mention `json:"corefs"` // Surviving mentions in first-seen order
}

// Cluster is a set of mention identifiers believed mutually coreferent.
// A cluster's label is its index in the paragraph's cluster list; indices are
// stable even when later removals empty a cluster.
type Cluster map[int]bool

// Has reports whether id is a member of the cluster
func (c Cluster) Has(id int) bool {
	return c[id]
}

// Add inserts both identifiers of a pair into the cluster
func (c Cluster) Add(p Pair) {
	c[p.A] = true
	c[p.B] = true
}

// Remove deletes id from the cluster if present
func (c Cluster) Remove(id int) {
	delete(c, id)
}

// Intersects reports whether either identifier of the pair is already a member
func (c Cluster) Intersects(p Pair) bool {
	return c[p.A] || c[p.B]
}
