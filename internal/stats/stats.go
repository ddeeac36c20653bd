// Package stats accumulates corpus-wide descriptive statistics. Tallies are
// plain counters that merge associatively, so parallel workers can each
// build a partial tally and combine them when the pool drains.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/korpus-id/koref/internal/model"
)

// Tally holds append-only corpus counts. The maps always exist; reads of
// unseen keys yield zero.
type Tally struct {
	Paragraphs int
	Tokens     int
	Mentions   int
	Clusters   int
	Singletons int

	Links        map[model.RelationKind]int
	MentionTypes map[string]int
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{
		Links:        make(map[model.RelationKind]int),
		MentionTypes: make(map[string]int),
	}
}

// Merge adds other's counts into t
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	t.Paragraphs += other.Paragraphs
	t.Tokens += other.Tokens
	t.Mentions += other.Mentions
	t.Clusters += other.Clusters
	t.Singletons += other.Singletons
	for kind, n := range other.Links {
		t.Links[kind] += n
	}
	for typ, n := range other.MentionTypes {
		t.MentionTypes[typ] += n
	}
}

// Report writes the human-readable statistics summary. Averages are only
// printed when their denominators are nonzero; singletonsRemoved reflects
// whether the removal policy was active.
func (t *Tally) Report(w io.Writer, singletonsRemoved bool) {
	fmt.Fprintf(w, "\nStatistics:\n--------------------------\n")
	fmt.Fprintf(w, "Number of paragraphs: %d\n", t.Paragraphs)
	fmt.Fprintf(w, "Number of tokens: %d\n", t.Tokens)
	fmt.Fprintf(w, "Number of mentions: %d\n", t.Mentions)
	fmt.Fprintf(w, "Number of clusters: %d\n\n", t.Clusters)

	if t.Paragraphs > 0 {
		fmt.Fprintf(w, "Average paragraph length: %.1f\n", float64(t.Tokens)/float64(t.Paragraphs))
		fmt.Fprintf(w, "Average number of mentions per paragraph: %.1f\n", float64(t.Mentions)/float64(t.Paragraphs))
		fmt.Fprintf(w, "Average number of clusters per paragraph: %.1f\n", float64(t.Clusters)/float64(t.Paragraphs))
	}
	if t.Clusters > 0 {
		fmt.Fprintf(w, "Average cluster size: %.1f\n", float64(t.Mentions)/float64(t.Clusters))
	}
	fmt.Fprintln(w)

	if singletonsRemoved {
		fmt.Fprintf(w, "Singleton mentions removed: %d\n\n", t.Singletons)
	}

	for _, kind := range sortedLinkKinds(t.Links) {
		fmt.Fprintf(w, "%s: %d links\n", kind, t.Links[kind])
	}
	fmt.Fprintln(w)

	for _, typ := range sortedKeys(t.MentionTypes) {
		fmt.Fprintf(w, "%s: %d mentions\n", typ, t.MentionTypes[typ])
	}
}

func sortedLinkKinds(m map[model.RelationKind]int) []model.RelationKind {
	kinds := make([]model.RelationKind, 0, len(m))
	for kind := range m {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
