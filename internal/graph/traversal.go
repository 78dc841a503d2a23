package graph

import (
	"fmt"
	"slices"

	"github.com/dtroode/friendgraph/internal/model"
)

// ShortestPath returns the shortest chain of friendships from a to b,
// both ends included. Neighbours are expanded in ascending id order so the
// result is deterministic. An empty path means b is unreachable from a.
func (g *Graph) ShortestPath(a, b int) ([]int, error) {
	if !g.Exists(a) {
		return nil, notFound(a)
	}
	if !g.Exists(b) {
		return nil, notFound(b)
	}
	if a == b {
		return []int{a}, nil
	}

	parent := map[int]int{a: a}
	queue := []int{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range sortedSet(g.adj[cur]) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == b {
				return unwind(parent, a, b), nil
			}
			queue = append(queue, next)
		}
	}
	return []int{}, nil
}

func unwind(parent map[int]int, a, b int) []int {
	path := []int{b}
	for cur := b; cur != a; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// ConnectedComponents partitions all users into maximal connected groups.
// Members are sorted ascending and groups are ordered by their smallest id;
// a user without friends forms a group of its own.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make(map[int]struct{}, len(g.users))
	out := [][]int{}
	for _, start := range g.ids() {
		if _, ok := seen[start]; ok {
			continue
		}
		seen[start] = struct{}{}
		comp := []int{}
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for next := range g.adj[cur] {
				if _, ok := seen[next]; ok {
					continue
				}
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}
	return out
}

// TopInfluencer returns the user with the most friends, preferring the lowest
// id on ties.
func (g *Graph) TopInfluencer() (model.UserSummary, int, error) {
	best, bestDegree := 0, -1
	for _, id := range g.ids() {
		if d := len(g.adj[id]); d > bestDegree {
			best, bestDegree = id, d
		}
	}
	if bestDegree < 0 {
		return model.UserSummary{}, 0, fmt.Errorf("graph is empty: %w", model.ErrNotFound)
	}
	return model.UserSummary{ID: best, Name: g.users[best].name}, bestDegree, nil
}
