package graph

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dtroode/friendgraph/internal/model"
)

// Weights of the weighted recommendation score:
//
//	score = WeightMutual*mutuals + WeightSharedInterest*sharedInterests
const (
	WeightMutual         = 1.0
	WeightSharedInterest = 0.5
)

// candidates returns every user other than id that is not yet its friend,
// in ascending id order.
func (g *Graph) candidates(id int) []int {
	out := []int{}
	for _, c := range g.ids() {
		if c == id || g.AreFriends(id, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (g *Graph) mutuals(a, b int) int {
	small, large := g.adj[a], g.adj[b]
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}
	return n
}

// RecommendMutual ranks non-friends of id by the number of friends they share
// with id, highest first, ties broken by ascending id, and keeps the top k.
func (g *Graph) RecommendMutual(id, k int) ([]model.MutualRecommendation, error) {
	if !g.Exists(id) {
		return nil, notFound(id)
	}
	out := []model.MutualRecommendation{}
	if k <= 0 {
		return out, nil
	}
	for _, c := range g.candidates(id) {
		out = append(out, model.MutualRecommendation{
			ID:      c,
			Name:    g.users[c].name,
			Mutuals: g.mutuals(id, c),
		})
	}
	slices.SortStableFunc(out, func(x, y model.MutualRecommendation) int {
		if x.Mutuals != y.Mutuals {
			return cmp.Compare(y.Mutuals, x.Mutuals)
		}
		return cmp.Compare(x.ID, y.ID)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// RecommendWeighted ranks non-friends of id by a combination of mutual
// friends and shared interests, highest score first, ties broken by
// ascending id, and keeps the top k.
func (g *Graph) RecommendWeighted(id, k int) ([]model.WeightedRecommendation, error) {
	if !g.Exists(id) {
		return nil, notFound(id)
	}
	out := []model.WeightedRecommendation{}
	if k <= 0 {
		return out, nil
	}
	for _, c := range g.candidates(id) {
		mutuals := g.mutuals(id, c)
		shared := sharedTags(g.users[id].tags, g.users[c].tags)
		out = append(out, model.WeightedRecommendation{
			ID:              c,
			Name:            g.users[c].name,
			Score:           Score(mutuals, len(shared)),
			Mutuals:         mutuals,
			SharedInterests: len(shared),
			Shared:          shared,
		})
	}
	slices.SortStableFunc(out, func(x, y model.WeightedRecommendation) int {
		if x.Score != y.Score {
			return cmp.Compare(y.Score, x.Score)
		}
		return cmp.Compare(x.ID, y.ID)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// Score combines mutual friends and shared interests into a ranking score.
func Score(mutuals, sharedInterests int) float64 {
	return WeightMutual*float64(mutuals) + WeightSharedInterest*float64(sharedInterests)
}

// sharedTags returns the tags of a that b also has, compared
// case-insensitively, in the order of a.
func sharedTags(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[strings.ToLower(t)] = struct{}{}
	}
	out := []string{}
	for _, t := range a {
		if _, ok := set[strings.ToLower(t)]; ok {
			out = append(out, t)
		}
	}
	return out
}
