// Package resolve turns a segmented annotation block into structured
// mention and cluster records: span extraction, link extraction, clustering,
// appositive fusion, and policy-driven filtering.
package resolve

import (
	"go.uber.org/zap"

	"github.com/korpus-id/koref/internal/model"
	"github.com/korpus-id/koref/internal/stats"
)

// Resolver resolves annotation blocks one paragraph at a time. A Resolver is
// stateless between calls and safe for concurrent use; all per-paragraph
// state lives in the paragraph value built inside Resolve.
type Resolver struct {
	policy model.PolicyConfig
	log    *zap.Logger
}

// NewResolver creates a resolver with the given filtering policy
func NewResolver(policy model.PolicyConfig, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{policy: policy, log: log}
}

// paragraph carries the working state for one block. Mention order and the
// disposal lists are insertion-ordered so output and removals are
// deterministic.
type paragraph struct {
	block *model.Block

	mentions map[int]*model.Mention
	order    []int // mention identifiers in first-seen order

	corefPairs []model.Pair
	apposPairs []model.Pair
	clusters   []model.Cluster

	aliases  []int // alias second members, removal candidates
	exappos  []int // extended-appositive second members, removal candidates
	bare     []int // non-head appositive cluster members, in discovery order
	bareSeen map[int]bool
}

func newParagraph(block *model.Block) *paragraph {
	return &paragraph{
		block:    block,
		mentions: make(map[int]*model.Mention),
		bareSeen: make(map[int]bool),
	}
}

// markBare records a bare-appositive mention once, preserving discovery order
func (p *paragraph) markBare(id int) {
	if p.bareSeen[id] {
		return
	}
	p.bareSeen[id] = true
	p.bare = append(p.bare, id)
}

// removeMention drops id from the mention set. Removal of an identifier that
// was never extracted (a logged anomaly upstream) is tolerated.
func (p *paragraph) removeMention(id int) bool {
	if _, ok := p.mentions[id]; !ok {
		return false
	}
	delete(p.mentions, id)
	return true
}

// Resolve runs the full per-paragraph pipeline over one block and returns the
// output record together with this paragraph's statistics contribution. A
// record is always produced, even for blocks with no mentions at all.
func (r *Resolver) Resolve(block *model.Block) (*model.Paragraph, *stats.Tally) {
	p := newParagraph(block)
	tally := stats.NewTally()

	r.extractSpans(p)
	r.extractLinks(p, tally)
	r.fuseAppositives(p)
	r.filterAndAssign(p, tally)

	record := &model.Paragraph{
		Text:   block.Text,
		Tokens: block.Tokens,
		Corefs: []*model.Mention{},
	}
	for _, id := range p.order {
		if m, ok := p.mentions[id]; ok {
			record.Corefs = append(record.Corefs, m)
		}
	}

	tally.Paragraphs++
	tally.Tokens += len(block.Tokens)
	tally.Mentions += len(record.Corefs)
	tally.Clusters += len(p.clusters)
	for _, m := range record.Corefs {
		tally.MentionTypes[m.Type]++
	}

	return record, tally
}
