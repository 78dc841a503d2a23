package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
)

func TestGraph_RecommendMutualExample(t *testing.T) {
	g := newTrio(t)

	got, err := g.RecommendMutual(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []model.MutualRecommendation{{ID: 3, Name: "Carol", Mutuals: 1}}, got)
}

func TestGraph_RecommendMutual(t *testing.T) {
	// 1 is friends with 2, 3, 4. 5 knows 2 and 3, 6 knows 4, 7 knows 2.
	g := New()
	for i := 1; i <= 8; i++ {
		_, err := g.AddUserWithID("u", i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {1, 4}, {5, 2}, {5, 3}, {6, 4}, {7, 2}} {
		_, err := g.AddFriend(e[0], e[1])
		require.NoError(t, err)
	}

	got, err := g.RecommendMutual(1, 10)
	require.NoError(t, err)

	ids := make([]int, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
		assert.NotEqual(t, 1, r.ID)
		assert.False(t, g.AreFriends(1, r.ID))
	}
	assert.Equal(t, []int{5, 6, 7, 8}, ids)
	assert.Equal(t, []int{2, 1, 1, 0}, []int{got[0].Mutuals, got[1].Mutuals, got[2].Mutuals, got[3].Mutuals})

	top, err := g.RecommendMutual(1, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, 5, top[0].ID)

	none, err := g.RecommendMutual(1, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = g.RecommendMutual(42, 3)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGraph_RecommendWeighted(t *testing.T) {
	g := newTrio(t)
	_, err := g.AddUserWithID("Dave", 4)
	require.NoError(t, err)
	require.NoError(t, g.SetInterests(1, []string{"Go", "chess", "music"}))
	require.NoError(t, g.SetInterests(3, []string{"go"}))
	require.NoError(t, g.SetInterests(4, []string{"CHESS", "music", "art"}))

	got, err := g.RecommendWeighted(1, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Carol: 1 mutual + 1 shared = 1.5, Dave: 0 mutual + 2 shared = 1.0.
	assert.Equal(t, model.WeightedRecommendation{
		ID: 3, Name: "Carol", Score: 1.5, Mutuals: 1, SharedInterests: 1, Shared: []string{"Go"},
	}, got[0])
	assert.Equal(t, model.WeightedRecommendation{
		ID: 4, Name: "Dave", Score: 1.0, Mutuals: 0, SharedInterests: 2, Shared: []string{"chess", "music"},
	}, got[1])

	_, err = g.RecommendWeighted(9, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGraph_RecommendWeightedTieBreak(t *testing.T) {
	g := New()
	for i := 1; i <= 3; i++ {
		_, err := g.AddUserWithID("u", i)
		require.NoError(t, err)
	}
	got, err := g.RecommendWeighted(2, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, Score(0, 0))
	assert.Equal(t, 3.5, Score(3, 1))
	assert.Equal(t, 2.0, Score(0, 4))
}
