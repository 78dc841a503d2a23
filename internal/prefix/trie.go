// Package prefix provides a case-insensitive name index for autocomplete.
package prefix

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dtroode/friendgraph/internal/model"
)

type node struct {
	next map[rune]*node
	// ids of users whose folded name ends at this node
	ids map[int]struct{}
}

func newNode() *node {
	return &node{next: make(map[rune]*node)}
}

// Index maps lower-cased user names to ids.
type Index struct {
	root  *node
	names map[int]string
}

// New creates an empty Index.
func New() *Index {
	return &Index{root: newNode(), names: make(map[int]string)}
}

// Rebuild replaces the index content with users.
func (x *Index) Rebuild(users []model.UserSummary) {
	x.root = newNode()
	x.names = make(map[int]string, len(users))
	for _, u := range users {
		x.Insert(u.ID, u.Name)
	}
}

// Len returns the number of indexed users.
func (x *Index) Len() int {
	return len(x.names)
}

// Insert indexes name under id, replacing any previous name of id.
func (x *Index) Insert(id int, name string) {
	if _, ok := x.names[id]; ok {
		x.Remove(id)
	}
	cur := x.root
	for _, r := range fold(name) {
		child, ok := cur.next[r]
		if !ok {
			child = newNode()
			cur.next[r] = child
		}
		cur = child
	}
	if cur.ids == nil {
		cur.ids = make(map[int]struct{})
	}
	cur.ids[id] = struct{}{}
	x.names[id] = name
}

// Remove drops id from the index and prunes branches left empty.
func (x *Index) Remove(id int) {
	name, ok := x.names[id]
	if !ok {
		return
	}
	delete(x.names, id)

	key := []rune(fold(name))
	path := make([]*node, 0, len(key)+1)
	cur := x.root
	path = append(path, cur)
	for _, r := range key {
		cur = cur.next[r]
		if cur == nil {
			return
		}
		path = append(path, cur)
	}
	delete(cur.ids, id)

	for i := len(key); i > 0; i-- {
		n := path[i]
		if len(n.ids) > 0 || len(n.next) > 0 {
			break
		}
		delete(path[i-1].next, key[i-1])
	}
}

// Suggest returns up to k users whose name starts with prefix, ignoring case,
// ordered by folded name, then name, then id.
func (x *Index) Suggest(prefix string, k int) []model.UserSummary {
	out := []model.UserSummary{}
	if k <= 0 {
		return out
	}
	cur := x.root
	for _, r := range fold(prefix) {
		cur = cur.next[r]
		if cur == nil {
			return out
		}
	}

	stack := []*node{cur}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for id := range n.ids {
			out = append(out, model.UserSummary{ID: id, Name: x.names[id]})
		}
		for _, child := range n.next {
			stack = append(stack, child)
		}
	}

	slices.SortFunc(out, func(a, b model.UserSummary) int {
		if c := cmp.Compare(fold(a.Name), fold(b.Name)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func fold(s string) string {
	return strings.ToLower(s)
}
