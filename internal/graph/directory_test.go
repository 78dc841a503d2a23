package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
)

func TestGraph_AddUser(t *testing.T) {
	g := New()

	id, err := g.AddUser("Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = g.AddUser("Bob")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	_, err = g.AddUser("   ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, 2, g.Len())
}

func TestGraph_AddUser_IDSpaceExhausted(t *testing.T) {
	g := New()

	id, err := g.AddUserWithID("Max", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, id)

	_, err = g.AddUser("Next")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, math.MaxInt, g.HighWater())

	restored, err := FromSnapshot(g.Snapshot())
	require.NoError(t, err)
	_, err = restored.AddUser("Next")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestGraph_AddUserWithID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{name: "free id", id: 10},
		{name: "taken id", id: 1, wantErr: model.ErrDuplicateID},
		{name: "zero id", id: 0, wantErr: model.ErrInvalidInput},
		{name: "negative id", id: -3, wantErr: model.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_, err := g.AddUser("Alice")
			require.NoError(t, err)

			got, err := g.AddUserWithID("Zed", tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got)
		})
	}
}

func TestGraph_IDsAreNeverRecycled(t *testing.T) {
	g := New()
	a, _ := g.AddUser("Alice")
	b, _ := g.AddUser("Bob")
	require.True(t, g.RemoveUser(b))

	c, err := g.AddUser("Carol")
	require.NoError(t, err)
	assert.Equal(t, 3, c)
	assert.NotEqual(t, a, c)

	_, err = g.AddUserWithID("Dave", 40)
	require.NoError(t, err)
	next, err := g.AddUser("Eve")
	require.NoError(t, err)
	assert.Equal(t, 41, next)
	assert.Equal(t, 41, g.HighWater())
}

func TestGraph_RemoveUserCascades(t *testing.T) {
	g := New()
	a, _ := g.AddUser("Alice")
	b, _ := g.AddUser("Bob")
	c, _ := g.AddUser("Carol")
	_, err := g.AddFriend(a, b)
	require.NoError(t, err)
	_, err = g.AddFriend(b, c)
	require.NoError(t, err)

	assert.True(t, g.RemoveUser(b))
	assert.False(t, g.RemoveUser(b))

	for _, id := range []int{a, c} {
		friends, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.NotContains(t, friends, b)
	}
	_, err = g.Neighbors(b)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_Interests(t *testing.T) {
	g := New()
	id, _ := g.AddUser("Alice")

	require.NoError(t, g.SetInterests(id, []string{" AI ", "music", "", "ai", "Go"}))
	tags, err := g.Interests(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "music", "Go"}, tags)

	require.NoError(t, g.AddInterests(id, []string{"MUSIC", "chess"}))
	tags, err = g.Interests(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "music", "Go", "chess"}, tags)

	require.NoError(t, g.SetInterests(id, nil))
	tags, err = g.Interests(id)
	require.NoError(t, err)
	assert.Empty(t, tags)

	assert.ErrorIs(t, g.SetInterests(99, []string{"x"}), model.ErrNotFound)
	_, err = g.Interests(99)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags("  "))
	assert.Equal(t, []string{"AI", "coding", "music"}, SplitTags("AI, coding,music,,ai"))
}

func TestGraph_UserAndListing(t *testing.T) {
	g := New()
	_, _ = g.AddUserWithID("Carol", 3)
	_, _ = g.AddUserWithID("Alice", 1)
	_, _ = g.AddUserWithID("Alice", 2)
	_, err := g.AddFriend(3, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetInterests(3, []string{"go"}))

	assert.Equal(t, []model.UserSummary{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Alice"},
		{ID: 3, Name: "Carol"},
	}, g.Users())

	info, err := g.User(3)
	require.NoError(t, err)
	assert.Equal(t, model.UserInfo{ID: 3, Name: "Carol", Friends: []int{1}, Interests: []string{"go"}}, info)

	_, err = g.User(7)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.Equal(t, []int{1, 2}, g.FindByName("Alice"))
	assert.Empty(t, g.FindByName("alice"))
}
