package resolve

import (
	"go.uber.org/zap"

	"github.com/korpus-id/koref/internal/stats"
)

// filterAndAssign applies the disposal policy and stamps surviving mentions
// with their cluster index. Order is contractual:
//
//	(a) bare-appositive mentions are dropped unless independently coreferent
//	(b) coreference pairs are clustered and each mention gets the index of
//	    the first cluster containing it; the rest are singletons
//	(c) singletons are dropped when the policy says so
//	(d) alias targets are dropped and scrubbed from clusters unless retained
//	(e) extended-appositive targets likewise
//
// Appositive disposal runs before cluster assignment; alias and
// extended-appositive disposal run after, leaving emptied clusters in place
// so assigned labels stay valid.
func (r *Resolver) filterAndAssign(p *paragraph, tally *stats.Tally) {
	// (a) Bare appositives survive only when some coreference pair links
	// them to another mention.
	linked := make(map[int]bool, len(p.corefPairs)*2)
	for _, pair := range p.corefPairs {
		linked[pair.A] = true
		linked[pair.B] = true
	}
	for _, id := range p.bare {
		if linked[id] {
			continue
		}
		if !p.removeMention(id) {
			r.log.Debug("bare-appositive mention already absent", zap.Int("mention", id))
		}
	}

	// (b) Cluster assignment in first-seen mention order; cluster label is
	// the index of the first matching cluster.
	p.clusters = GroupPairs(p.corefPairs)

	var singletons []int
	for _, id := range p.order {
		m, ok := p.mentions[id]
		if !ok {
			continue
		}

		matched := false
		for i, cluster := range p.clusters {
			if cluster.Has(id) {
				label := i
				m.Label = &label
				matched = true
				break
			}
		}

		if !matched {
			tally.Singletons++
			singletons = append(singletons, id)
		}
	}

	// (c)
	if r.policy.RemoveSingletons {
		for _, id := range singletons {
			p.removeMention(id)
		}
	}

	// (d)
	if !r.policy.UseAliases {
		r.dispose(p, p.aliases, "alias")
	}

	// (e)
	if !r.policy.UseExappos {
		r.dispose(p, p.exappos, "extended-appositive")
	}
}

// dispose removes every candidate mention and scrubs it from all clusters.
// Candidates referencing never-extracted or already-removed mentions are
// tolerated.
func (r *Resolver) dispose(p *paragraph, candidates []int, kind string) {
	for _, id := range candidates {
		if !p.removeMention(id) {
			r.log.Debug("removal candidate already absent",
				zap.String("kind", kind),
				zap.Int("mention", id))
		}
		for _, cluster := range p.clusters {
			cluster.Remove(id)
		}
	}
}
