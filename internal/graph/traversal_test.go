package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
)

func TestGraph_ShortestPath(t *testing.T) {
	g := newTrio(t)
	_, err := g.AddUser("Dave")
	require.NoError(t, err)

	tests := []struct {
		name    string
		a, b    int
		want    []int
		wantErr error
	}{
		{name: "two hops", a: 1, b: 3, want: []int{1, 2, 3}},
		{name: "reverse", a: 3, b: 1, want: []int{3, 2, 1}},
		{name: "same user", a: 2, b: 2, want: []int{2}},
		{name: "unreachable", a: 1, b: 4, want: []int{}},
		{name: "unknown source", a: 8, b: 1, wantErr: model.ErrNotFound},
		{name: "unknown target", a: 1, b: 8, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ShortestPath(tt.a, tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGraph_ShortestPathPrefersLowerIDs(t *testing.T) {
	// 1 reaches 5 through either 2 or 3; ascending expansion picks 2.
	g := New()
	for i := 1; i <= 5; i++ {
		_, err := g.AddUserWithID("u", i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{1, 3}, {1, 2}, {3, 5}, {2, 4}, {4, 5}, {2, 5}} {
		_, err := g.AddFriend(e[0], e[1])
		require.NoError(t, err)
	}

	path, err := g.ShortestPath(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, path)
}

func TestGraph_ConnectedComponents(t *testing.T) {
	g := New()
	for _, id := range []int{7, 1, 4, 2, 9} {
		_, err := g.AddUserWithID("u", id)
		require.NoError(t, err)
	}
	_, _ = g.AddFriend(9, 1)
	_, _ = g.AddFriend(4, 7)

	comps := g.ConnectedComponents()
	assert.Equal(t, [][]int{{1, 9}, {2}, {4, 7}}, comps)

	seen := map[int]int{}
	for _, c := range comps {
		for _, id := range c {
			seen[id]++
		}
	}
	assert.Len(t, seen, g.Len())
	for id, n := range seen {
		assert.Equal(t, 1, n, "user %d", id)
	}
}

func TestGraph_ConnectedComponentsEmpty(t *testing.T) {
	assert.Equal(t, [][]int{}, New().ConnectedComponents())
}

func TestGraph_TopInfluencer(t *testing.T) {
	_, _, err := New().TopInfluencer()
	assert.ErrorIs(t, err, model.ErrNotFound)

	g := newTrio(t)
	u, degree, err := g.TopInfluencer()
	require.NoError(t, err)
	assert.Equal(t, model.UserSummary{ID: 2, Name: "Bob"}, u)
	assert.Equal(t, 2, degree)

	g.RemoveFriend(2, 3)
	u, degree, err = g.TopInfluencer()
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, 1, degree)
}
