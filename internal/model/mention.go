package model

// Mention represents a token span tagged with a semantic type and identifier
type Mention struct {
	ID    int      `json:"-"`               // Annotation identifier (unique within a paragraph)
	Start int      `json:"start"`           // First token index (inclusive)
	End   int      `json:"end"`             // Last token index (inclusive)
	Text  []string `json:"text"`            // Token slice [Start, End]
	Type  string   `json:"type"`            // Semantic type tag (see MentionType)
	Label *int     `json:"label,omitempty"` // Cluster index, set only for clustered mentions
}

// Singleton reports whether the mention was never assigned to a cluster
func (m *Mention) Singleton() bool {
	return m.Label == nil
}

// MentionType categorizes the semantic class of a mention
type MentionType string

const (
	TypeProper  MentionType = "PROPER"  // Proper names
	TypePronoun MentionType = "PRONOUN" // Pronouns
	TypeNoun    MentionType = "NOUN"    // Common noun phrases
	TypeVerb    MentionType = "VERB"    // Verbal mentions
	TypeList    MentionType = "LIST"    // Coordinated lists of mentions
)

// MentionTypes lists the known semantic type tags. The enumeration is open:
// an unrecognized tag is preserved on the mention, never rejected.
var MentionTypes = []MentionType{TypeProper, TypePronoun, TypeNoun, TypeVerb, TypeList}
