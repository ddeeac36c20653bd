package resolve

import (
	"sort"

	"github.com/korpus-id/koref/internal/model"
)

// GroupPairs merges pairwise relations into an ordered list of clusters:
//
//	[(1,2), (2,3), (4,5), (6,7), (5,9)] -> [{1,2,3}, {4,5,9}, {6,7}]
//
// Each pair joins the first existing cluster it intersects, or starts a new
// one. First match only: when a later pair bridges two existing clusters,
// only the first-matched cluster absorbs it and the clusters are NOT merged,
// so membership can end up split relative to a true transitive closure. This
// is the documented contract, not an accident; callers rely on cluster
// indices assigned in discovery order.
func GroupPairs(pairs []model.Pair) []model.Cluster {
	if len(pairs) == 0 {
		return nil
	}

	first := model.Cluster{}
	first.Add(pairs[0])
	clusters := []model.Cluster{first}

	for _, pair := range pairs[1:] {
		matched := false
		for _, cluster := range clusters {
			if cluster.Intersects(pair) {
				cluster.Add(pair)
				matched = true
				break
			}
		}
		if !matched {
			next := model.Cluster{}
			next.Add(pair)
			clusters = append(clusters, next)
		}
	}

	return clusters
}

// sortedMembers returns the cluster's identifiers in increasing order
func sortedMembers(cluster model.Cluster) []int {
	members := make([]int, 0, len(cluster))
	for id := range cluster {
		members = append(members, id)
	}
	sort.Ints(members)
	return members
}
