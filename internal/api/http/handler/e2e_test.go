package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
	"github.com/dtroode/friendgraph/internal/service"
	"github.com/dtroode/friendgraph/internal/testutil"
)

func TestNetwork_EndToEnd(t *testing.T) {
	ctx := context.Background()
	snapshot := filepath.Join(t.TempDir(), "network.txt")
	network := service.NewNetwork(nil, testutil.MakeNoopLogger())
	s := newTestServer(t, network, snapshot)

	for _, name := range []string{"Alice", "Bob", "Carol", "alfred", "a%41"} {
		_, env := s.do(http.MethodPost, "/api/add_user", `{"name":"`+name+`"}`)
		require.True(t, env.Success)
	}
	for _, pair := range []string{`{"a":1,"b":2}`, `{"a":2,"b":3}`} {
		_, env := s.do(http.MethodPost, "/api/add_friend", pair)
		require.True(t, decodeData[addedResponse](t, env).Added)
	}
	_, env := s.do(http.MethodPost, "/api/set_interests", `{"id":1,"interests":["chess","Go"]}`)
	require.True(t, decodeData[updatedResponse](t, env).Updated)

	_, env = s.do(http.MethodGet, "/api/shortest_path/1/3", "")
	assert.Equal(t, []int{1, 2, 3}, decodeData[map[string][]int](t, env)["path"])

	_, env = s.do(http.MethodGet, "/api/recommend_mutual/1/5", "")
	recs := decodeData[map[string][]model.MutualRecommendation](t, env)["recommendations"]
	require.NotEmpty(t, recs)
	assert.Equal(t, model.MutualRecommendation{ID: 3, Name: "Carol", Mutuals: 1}, recs[0])

	_, env = s.do(http.MethodGet, "/api/suggest/AL/5", "")
	assert.Equal(t, []model.UserSummary{{ID: 4, Name: "alfred"}, {ID: 1, Name: "Alice"}},
		decodeData[map[string][]model.UserSummary](t, env)["suggestions"])

	_, env = s.do(http.MethodGet, "/api/suggest/a%2541/5", "")
	assert.Equal(t, []model.UserSummary{{ID: 5, Name: "a%41"}},
		decodeData[map[string][]model.UserSummary](t, env)["suggestions"])

	_, env = s.do(http.MethodPost, "/api/save", "")
	saved := decodeData[savedResponse](t, env)
	require.True(t, saved.Saved)
	assert.Equal(t, snapshot, saved.Path)

	_, env = s.do(http.MethodPost, "/api/remove_user", `{"id":2}`)
	require.True(t, decodeData[removedResponse](t, env).Removed)

	code, _ := s.do(http.MethodGet, "/api/user/2", "")
	assert.Equal(t, http.StatusNotFound, code)

	_, env = s.do(http.MethodPost, "/api/load", "")
	require.True(t, decodeData[loadedResponse](t, env).Loaded)

	_, env = s.do(http.MethodGet, "/api/stats", "")
	stats := decodeData[model.Stats](t, env)
	assert.Equal(t, 5, stats.Users)
	assert.Equal(t, 2, stats.Friendships)

	tags, err := network.Interests(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"chess", "Go"}, tags)

	req := httptest.NewRequest(http.MethodGet, "/api/export/dot", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("graph SocialNetwork {")))
	assert.Contains(t, rec.Body.String(), `2 [label="Bob"];`)
}
