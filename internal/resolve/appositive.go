package resolve

import "go.uber.org/zap"

// fuseAppositives groups appositive pairs into clusters and, when fusion is
// enabled, expands each cluster's head mention to absorb its appositive
// phrase(s). Every non-head member is marked bare-appositive regardless of
// policy; the filter stage decides whether it survives.
//
// Annotation shape: [Mas Ahmad]1 [umur 45 tahun]2 [Dia]3 is labeled
// APPOS[1_2] and IDENT[1_3]; fusing extends mention 1 over tokens 0..4.
func (r *Resolver) fuseAppositives(p *paragraph) {
	tokens := p.block.Tokens

	for _, cluster := range GroupPairs(p.apposPairs) {
		members := sortedMembers(cluster)
		head, tail := members[0], members[1:]
		// A self-pair like APPOS[1_1] yields a single-member cluster
		if len(tail) == 0 {
			r.log.Warn("appositive cluster has no phrase members", zap.Int("mention", head))
			continue
		}

		for _, id := range tail {
			p.markBare(id)
		}

		if !r.policy.UseAppos {
			continue
		}

		hm, ok := p.mentions[head]
		if !ok {
			r.log.Warn("appositive head mention was never extracted", zap.Int("mention", head))
			continue
		}
		last, ok := p.mentions[tail[len(tail)-1]]
		if !ok {
			r.log.Warn("appositive phrase mention was never extracted", zap.Int("mention", tail[len(tail)-1]))
			continue
		}

		hm.End = last.End
		hm.Text = tokens[hm.Start : hm.End+1]

		// The annotation layer sometimes leaves a closing parenthesis just
		// outside the appositive span. If the fused text has exactly one
		// unmatched "(" and the next token closes it, pull it in.
		if countToken(hm.Text, "(") == countToken(hm.Text, ")")+1 {
			if hm.End+1 < len(tokens) && tokens[hm.End+1] == ")" {
				hm.End++
				hm.Text = tokens[hm.Start : hm.End+1]
			}
		}
	}
}

// countToken counts tokens exactly equal to want
func countToken(tokens []string, want string) int {
	n := 0
	for _, tok := range tokens {
		if tok == want {
			n++
		}
	}
	return n
}
