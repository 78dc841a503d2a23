// Package graph implements the in-memory social graph: the user directory,
// the undirected friendship relation and the algorithms that run over them.
//
// Graph is not safe for concurrent use; callers serialise access.
package graph

import (
	"fmt"
	"slices"

	"github.com/dtroode/friendgraph/internal/model"
)

type user struct {
	name string
	tags []string
}

// Graph holds users and their friendships.
type Graph struct {
	users     map[int]*user
	adj       map[int]map[int]struct{}
	highWater int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		users: make(map[int]*user),
		adj:   make(map[int]map[int]struct{}),
	}
}

// Snapshot returns a copy of the graph state with users and edges sorted.
func (g *Graph) Snapshot() model.Snapshot {
	s := model.Snapshot{HighWater: g.highWater}
	for _, id := range g.ids() {
		u := g.users[id]
		s.Users = append(s.Users, model.SnapshotUser{
			ID:        id,
			Name:      u.name,
			Interests: slices.Clone(u.tags),
		})
	}
	s.Edges = g.Edges()
	return s
}

// FromSnapshot builds a new Graph from s. It fails with model.ErrInvalidInput
// when s references unknown users, repeats ids or contains self loops.
func FromSnapshot(s model.Snapshot) (*Graph, error) {
	g := New()
	for _, u := range s.Users {
		if _, err := g.AddUserWithID(u.Name, u.ID); err != nil {
			return nil, fmt.Errorf("user %d: %w: %w", u.ID, model.ErrInvalidInput, err)
		}
		if len(u.Interests) > 0 {
			if err := g.SetInterests(u.ID, u.Interests); err != nil {
				return nil, fmt.Errorf("user %d: %w", u.ID, err)
			}
		}
	}
	for _, e := range s.Edges {
		if _, err := g.AddFriend(e.A, e.B); err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.A, e.B, model.ErrInvalidInput)
		}
	}
	if s.HighWater > g.highWater {
		g.highWater = s.HighWater
	}
	return g, nil
}

func (g *Graph) ids() []int {
	ids := make([]int, 0, len(g.users))
	for id := range g.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func sortedSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
