package resolve

import (
	"go.uber.org/zap"

	"github.com/korpus-id/koref/internal/model"
	"github.com/korpus-id/koref/internal/stats"
)

// extractLinks parses every relation label into a typed mention pair.
// Appositive pairs are bucketed separately; identity, alias, and
// extended-appositive pairs all feed the general coreference list. Alias and
// extended-appositive second members are recorded as removal candidates
// unconditionally; whether they are removed is decided by policy at filter
// time.
func (r *Resolver) extractLinks(p *paragraph, tally *stats.Tally) {
	for _, labelList := range p.block.Labels {
		for _, label := range labelList {
			if !isRelation(label) {
				continue
			}

			pair, err := parsePair(label)
			if err != nil {
				r.log.Warn("discarding malformed relation label", zap.Error(err))
				continue
			}

			kind := model.RelationKind(labelPrefix(label))
			tally.Links[kind]++

			switch kind {
			case model.KindAppos:
				p.apposPairs = append(p.apposPairs, pair)
			default:
				p.corefPairs = append(p.corefPairs, pair)
				if kind == model.KindAlias {
					p.aliases = append(p.aliases, pair.B)
				}
				if kind == model.KindExappos {
					p.exappos = append(p.exappos, pair.B)
				}
			}
		}
	}

	// Relations may reference identifiers the span extractor never saw.
	// Absent mentions are never synthesized; later removal stages tolerate
	// the gap.
	for _, pair := range p.corefPairs {
		for _, id := range []int{pair.A, pair.B} {
			if _, ok := p.mentions[id]; !ok {
				r.log.Warn("relation references unknown mention",
					zap.Int("mention", id),
					zap.Int("pair_a", pair.A),
					zap.Int("pair_b", pair.B))
			}
		}
	}
}
