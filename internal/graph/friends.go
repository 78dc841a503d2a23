package graph

import (
	"fmt"

	"github.com/dtroode/friendgraph/internal/model"
)

// AddFriend connects a and b. Adding an existing friendship succeeds without
// change; created reports whether a new edge was stored.
func (g *Graph) AddFriend(a, b int) (created bool, err error) {
	if a == b {
		return false, fmt.Errorf("user %d: %w", a, model.ErrSelfLoop)
	}
	if !g.Exists(a) {
		return false, notFound(a)
	}
	if !g.Exists(b) {
		return false, notFound(b)
	}
	if _, ok := g.adj[a][b]; ok {
		return false, nil
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	return true, nil
}

// RemoveFriend disconnects a and b in both directions. It reports false when
// there was no such edge.
func (g *Graph) RemoveFriend(a, b int) bool {
	if _, ok := g.adj[a][b]; !ok {
		return false
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	return true
}

// AreFriends reports whether a and b are connected.
func (g *Graph) AreFriends(a, b int) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Neighbors returns the friends of id in ascending order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.Exists(id) {
		return nil, notFound(id)
	}
	return sortedSet(g.adj[id]), nil
}

// Degree returns the number of friends of id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.Exists(id) {
		return 0, notFound(id)
	}
	return len(g.adj[id]), nil
}

// EdgeCount returns the number of friendships.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, set := range g.adj {
		n += len(set)
	}
	return n / 2
}

// Edges lists every friendship once as (a, b) with a < b, sorted.
func (g *Graph) Edges() []model.Edge {
	out := make([]model.Edge, 0, g.EdgeCount())
	for _, a := range g.ids() {
		for _, b := range sortedSet(g.adj[a]) {
			if a < b {
				out = append(out, model.Edge{A: a, B: b})
			}
		}
	}
	return out
}
