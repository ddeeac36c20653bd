package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/korpus-id/koref/internal/model"
)

// placeholder marks a token position carrying no annotation
const placeholder = "_"

// isRelation reports whether a label encodes a pairwise relation. Mention
// and relation labels share the same per-token slot and are told apart by
// the relation-kind marker in the label text.
func isRelation(label string) bool {
	for _, kind := range model.RelationKinds {
		if strings.Contains(label, string(kind)) {
			return true
		}
	}
	return false
}

// labelPrefix returns the tag before the bracketed payload. APPOS being a
// substring of EXAPPOS makes the prefix, not the marker match, authoritative
// for the relation kind.
func labelPrefix(label string) string {
	if open := strings.Index(label, "["); open >= 0 {
		return label[:open]
	}
	return label
}

// labelPayload returns the text between the first "[" and the trailing "]"
func labelPayload(label string) (string, error) {
	open := strings.Index(label, "[")
	if open < 0 || !strings.HasSuffix(label, "]") {
		return "", fmt.Errorf("label %q has no bracketed payload", label)
	}
	return label[open+1 : len(label)-1], nil
}

// parseMentionID extracts the mention identifier from a mention label,
// e.g. "NOUN[12]" -> 12
func parseMentionID(label string) (int, error) {
	payload, err := labelPayload(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("label %q: identifier is not an integer", label)
	}
	return id, nil
}

// parsePair extracts the two mention identifiers from a relation label,
// e.g. "IDENT[1_2]" -> (1, 2)
func parsePair(label string) (model.Pair, error) {
	payload, err := labelPayload(label)
	if err != nil {
		return model.Pair{}, err
	}

	parts := strings.Split(payload, "_")
	if len(parts) != 2 {
		return model.Pair{}, fmt.Errorf("label %q does not contain a pair of mentions", label)
	}

	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Pair{}, fmt.Errorf("label %q: first identifier is not an integer", label)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Pair{}, fmt.Errorf("label %q: second identifier is not an integer", label)
	}

	return model.Pair{A: a, B: b}, nil
}

// containsLabel reports whether the exact label string appears in the label set
func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
