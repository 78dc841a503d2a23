package graph

import (
	"fmt"
	"math"
	"strings"

	"github.com/dtroode/friendgraph/internal/model"
)

// AddUser registers a user under the next free id and returns it.
// Ids are allocated above the high-water mark and never recycled.
func (g *Graph) AddUser(name string) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if g.highWater == math.MaxInt {
		return 0, fmt.Errorf("no free id above %d: %w", g.highWater, model.ErrInvalidInput)
	}
	g.highWater++
	g.insert(g.highWater, name)
	return g.highWater, nil
}

// AddUserWithID registers a user under a caller-chosen id.
func (g *Graph) AddUserWithID(name string, id int) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id %d must be positive: %w", id, model.ErrInvalidInput)
	}
	if _, ok := g.users[id]; ok {
		return 0, fmt.Errorf("id %d: %w", id, model.ErrDuplicateID)
	}
	g.insert(id, name)
	if id > g.highWater {
		g.highWater = id
	}
	return id, nil
}

func (g *Graph) insert(id int, name string) {
	g.users[id] = &user{name: name}
	g.adj[id] = make(map[int]struct{})
}

// RemoveUser deletes a user and every friendship incident to it.
// It reports false when the user does not exist.
func (g *Graph) RemoveUser(id int) bool {
	if _, ok := g.users[id]; !ok {
		return false
	}
	for friend := range g.adj[id] {
		delete(g.adj[friend], id)
	}
	delete(g.adj, id)
	delete(g.users, id)
	return true
}

// Exists reports whether id refers to a registered user.
func (g *Graph) Exists(id int) bool {
	_, ok := g.users[id]
	return ok
}

// Len returns the number of users.
func (g *Graph) Len() int {
	return len(g.users)
}

// HighWater returns the largest id the graph has ever held.
func (g *Graph) HighWater() int {
	return g.highWater
}

// Name returns the display name of id.
func (g *Graph) Name(id int) (string, error) {
	u, ok := g.users[id]
	if !ok {
		return "", notFound(id)
	}
	return u.name, nil
}

// SetInterests replaces the interest tags of id with the normalised tags.
func (g *Graph) SetInterests(id int, tags []string) error {
	u, ok := g.users[id]
	if !ok {
		return notFound(id)
	}
	u.tags = NormalizeTags(tags)
	return nil
}

// AddInterests appends tags to the interests of id, skipping duplicates.
func (g *Graph) AddInterests(id int, tags []string) error {
	u, ok := g.users[id]
	if !ok {
		return notFound(id)
	}
	u.tags = NormalizeTags(append(u.tags, tags...))
	return nil
}

// Interests returns a copy of the interest tags of id.
func (g *Graph) Interests(id int) ([]string, error) {
	u, ok := g.users[id]
	if !ok {
		return nil, notFound(id)
	}
	out := make([]string, len(u.tags))
	copy(out, u.tags)
	return out, nil
}

// User returns the full view of id including its friends.
func (g *Graph) User(id int) (model.UserInfo, error) {
	u, ok := g.users[id]
	if !ok {
		return model.UserInfo{}, notFound(id)
	}
	tags := make([]string, len(u.tags))
	copy(tags, u.tags)
	return model.UserInfo{
		ID:        id,
		Name:      u.name,
		Friends:   sortedSet(g.adj[id]),
		Interests: tags,
	}, nil
}

// Users lists every user in ascending id order.
func (g *Graph) Users() []model.UserSummary {
	ids := g.ids()
	out := make([]model.UserSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.UserSummary{ID: id, Name: g.users[id].name})
	}
	return out
}

// FindByName returns the ids of users whose name equals name exactly.
func (g *Graph) FindByName(name string) []int {
	out := []int{}
	for _, id := range g.ids() {
		if g.users[id].name == name {
			out = append(out, id)
		}
	}
	return out
}

// SplitTags splits a comma-joined tag list.
func SplitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(csv, ","))
}

// NormalizeTags trims tags, drops empty ones and removes case-insensitive
// duplicates, keeping the first spelling in its original position.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty: %w", model.ErrInvalidInput)
	}
	return nil
}

func notFound(id int) error {
	return fmt.Errorf("user %d: %w", id, model.ErrNotFound)
}
