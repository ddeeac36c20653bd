package resolve

import (
	"go.uber.org/zap"

	"github.com/korpus-id/koref/internal/model"
)

// extractSpans walks the per-token label sets and records every mention's
// span boundaries, text, and semantic type.
//
// A mention's span continues as long as the exact same label string repeats
// at the next position; the span ends at the first position where it does
// not, or at the paragraph's last position. The continuation check is on the
// verbatim label text (type + identifier), by contract with the annotation
// format.
func (r *Resolver) extractSpans(p *paragraph) {
	tokens, labels := p.block.Tokens, p.block.Labels

	for i, labelList := range labels {
		// A position whose label set carries the placeholder has no
		// annotations at all.
		if containsLabel(labelList, placeholder) {
			continue
		}

		for _, label := range labelList {
			if label == "" || isRelation(label) {
				continue
			}

			if labelPrefix(label) == "" {
				r.log.Warn("mention label has empty type prefix", zap.String("label", label))
			}

			id, err := parseMentionID(label)
			if err != nil {
				r.log.Warn("skipping malformed mention label", zap.Error(err))
				continue
			}

			if _, ok := p.mentions[id]; !ok {
				p.mentions[id] = &model.Mention{ID: id, Start: i}
				p.order = append(p.order, id)
			}

			if i == len(labels)-1 || !containsLabel(labels[i+1], label) {
				m := p.mentions[id]
				m.End = i
				m.Text = tokens[m.Start : i+1]
				m.Type = labelPrefix(label)
			}
		}
	}
}
