package stats

import (
	"strings"
	"testing"

	"github.com/korpus-id/koref/internal/model"
)

func TestTally_Merge(t *testing.T) {
	a := NewTally()
	a.Paragraphs = 2
	a.Tokens = 40
	a.Mentions = 6
	a.Clusters = 2
	a.Singletons = 1
	a.Links[model.KindIdent] = 3
	a.MentionTypes["PROPER"] = 4

	b := NewTally()
	b.Paragraphs = 1
	b.Tokens = 10
	b.Mentions = 2
	b.Clusters = 1
	b.Singletons = 2
	b.Links[model.KindIdent] = 1
	b.Links[model.KindAppos] = 2
	b.MentionTypes["NOUN"] = 2

	a.Merge(b)

	if a.Paragraphs != 3 || a.Tokens != 50 || a.Mentions != 8 || a.Clusters != 3 || a.Singletons != 3 {
		t.Errorf("unexpected merged counts: %+v", a)
	}
	if a.Links[model.KindIdent] != 4 || a.Links[model.KindAppos] != 2 {
		t.Errorf("unexpected merged link counts: %v", a.Links)
	}
	if a.MentionTypes["PROPER"] != 4 || a.MentionTypes["NOUN"] != 2 {
		t.Errorf("unexpected merged type counts: %v", a.MentionTypes)
	}
}

func TestTally_MergeNil(t *testing.T) {
	a := NewTally()
	a.Paragraphs = 1
	a.Merge(nil)
	if a.Paragraphs != 1 {
		t.Errorf("merging nil must be a no-op, got %d", a.Paragraphs)
	}
}

func TestTally_MergeIsAssociative(t *testing.T) {
	deltas := make([]*Tally, 3)
	for i := range deltas {
		d := NewTally()
		d.Paragraphs = 1
		d.Tokens = i + 1
		d.Links[model.KindAlias] = i
		deltas[i] = d
	}

	left := NewTally()
	for _, d := range deltas {
		left.Merge(d)
	}

	right := NewTally()
	for i := len(deltas) - 1; i >= 0; i-- {
		right.Merge(deltas[i])
	}

	if left.Tokens != right.Tokens || left.Links[model.KindAlias] != right.Links[model.KindAlias] {
		t.Errorf("merge order changed the totals: %+v vs %+v", left, right)
	}
}

func TestTally_Report(t *testing.T) {
	tally := NewTally()
	tally.Paragraphs = 2
	tally.Tokens = 20
	tally.Mentions = 4
	tally.Clusters = 2
	tally.Singletons = 1
	tally.Links[model.KindIdent] = 3
	tally.MentionTypes["PRONOUN"] = 4

	var buf strings.Builder
	tally.Report(&buf, true)
	out := buf.String()

	for _, want := range []string{
		"Number of paragraphs: 2",
		"Number of tokens: 20",
		"Average paragraph length: 10.0",
		"Average cluster size: 2.0",
		"Singleton mentions removed: 1",
		"IDENT: 3 links",
		"PRONOUN: 4 mentions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestTally_ReportEmptyCorpus(t *testing.T) {
	var buf strings.Builder
	NewTally().Report(&buf, false)

	out := buf.String()
	if !strings.Contains(out, "Number of paragraphs: 0") {
		t.Errorf("empty corpus report malformed:\n%s", out)
	}
	if strings.Contains(out, "Average") {
		t.Errorf("averages must be suppressed for an empty corpus:\n%s", out)
	}
}
