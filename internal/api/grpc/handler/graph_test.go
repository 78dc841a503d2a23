package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/friendgraph/internal/mocks"
	"github.com/dtroode/friendgraph/internal/model"
	"github.com/dtroode/friendgraph/internal/testutil"
)

var _ NetworkService = (*mocks.NetworkService)(nil)

func newMockGraph(t *testing.T) (*Graph, *mocks.NetworkService) {
	t.Helper()
	svc := mocks.NewNetworkService(t)
	return NewGraph(svc, "network.txt", testutil.MakeNoopLogger()), svc
}

func req(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestGraph_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		h, svc := newMockGraph(t)
		svc.EXPECT().AddUser(mock.Anything, "Alice").Return(1, nil)

		out, err := h.AddUser(ctx, req(t, map[string]any{"name": "Alice"}))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": float64(1)}, out.AsMap())
	})

	t.Run("rejected", func(t *testing.T) {
		h, svc := newMockGraph(t)
		svc.EXPECT().AddUser(mock.Anything, "  ").Return(0, fmt.Errorf("blank name: %w", model.ErrInvalidInput))

		_, err := h.AddUser(ctx, req(t, map[string]any{"name": "  "}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("duplicate id", func(t *testing.T) {
		h, svc := newMockGraph(t)
		svc.EXPECT().AddUserWithID(mock.Anything, "Zed", 10).Return(0, fmt.Errorf("id 10: %w", model.ErrDuplicateID))

		_, err := h.AddUserWithID(ctx, req(t, map[string]any{"name": "Zed", "id": 10}))
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})
}

func TestGraph_Mutations(t *testing.T) {
	ctx := context.Background()
	h, svc := newMockGraph(t)
	svc.EXPECT().AddUserWithID(mock.Anything, "Zed", 10).Return(10, nil)
	svc.EXPECT().RemoveUser(mock.Anything, 10).Return(true, nil)
	svc.EXPECT().AddFriend(mock.Anything, 1, 2).Return(nil)
	svc.EXPECT().RemoveFriend(mock.Anything, 2, 1).Return(false, nil)
	svc.EXPECT().AddInterests(mock.Anything, 1, "chess,Go").Return(nil)
	svc.EXPECT().SetInterests(mock.Anything, 3, "go, hiking").Return(nil)

	out, err := h.AddUserWithID(ctx, req(t, map[string]any{"name": "Zed", "id": 10}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(10)}, out.AsMap())

	out, err = h.RemoveUser(ctx, req(t, map[string]any{"id": 10}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"removed": true}, out.AsMap())

	out, err = h.AddFriend(ctx, req(t, map[string]any{"a": 1, "b": 2}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"added": true}, out.AsMap())

	out, err = h.RemoveFriend(ctx, req(t, map[string]any{"a": 2, "b": 1}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"removed": false}, out.AsMap())

	out, err = h.AddInterests(ctx, req(t, map[string]any{"id": 1, "interests": []any{"chess", "Go"}}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"updated": true}, out.AsMap())

	_, err = h.SetInterests(ctx, req(t, map[string]any{"id": 3, "interests": "go, hiking"}))
	require.NoError(t, err)
}

func TestGraph_InvalidRequests(t *testing.T) {
	ctx := context.Background()
	h, _ := newMockGraph(t)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "missing name", call: func() error {
			_, err := h.AddUser(ctx, req(t, map[string]any{}))
			return err
		}},
		{name: "missing id", call: func() error {
			_, err := h.GetUser(ctx, req(t, map[string]any{}))
			return err
		}},
		{name: "fractional id", call: func() error {
			_, err := h.GetUser(ctx, req(t, map[string]any{"id": 1.5}))
			return err
		}},
		{name: "id beyond exact integer range", call: func() error {
			_, err := h.GetUser(ctx, req(t, map[string]any{"id": float64(1<<53 + 2)}))
			return err
		}},
		{name: "negative id beyond exact integer range", call: func() error {
			_, err := h.AddFriend(ctx, req(t, map[string]any{"a": 1, "b": -float64(1 << 60)}))
			return err
		}},
		{name: "huge k", call: func() error {
			_, err := h.RecommendMutual(ctx, req(t, map[string]any{"id": 1, "k": 1e30}))
			return err
		}},
		{name: "bad interests", call: func() error {
			_, err := h.AddInterests(ctx, req(t, map[string]any{"id": 1, "interests": 7}))
			return err
		}},
		{name: "non-string tag", call: func() error {
			_, err := h.SetInterests(ctx, req(t, map[string]any{"id": 1, "interests": []any{"go", 3}}))
			return err
		}},
		{name: "missing k", call: func() error {
			_, err := h.Suggest(ctx, req(t, map[string]any{"prefix": "a"}))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, codes.InvalidArgument, status.Code(tt.call()))
		})
	}
}

func TestGraph_LargestExactID(t *testing.T) {
	h, svc := newMockGraph(t)
	svc.EXPECT().User(mock.Anything, 1<<53).Return(model.UserInfo{ID: 1 << 53, Name: "Edge", Friends: []int{}, Interests: []string{}}, nil)

	out, err := h.GetUser(context.Background(), req(t, map[string]any{"id": float64(1 << 53)}))
	require.NoError(t, err)
	assert.Equal(t, float64(1<<53), out.GetFields()["user"].GetStructValue().GetFields()["id"].GetNumberValue())
}

func TestGraph_Queries(t *testing.T) {
	ctx := context.Background()
	h, svc := newMockGraph(t)
	svc.EXPECT().Users(mock.Anything).Return([]model.UserSummary{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}, {ID: 3, Name: "Carol"}})
	svc.EXPECT().RecommendMutual(mock.Anything, 3, 5).Return([]model.MutualRecommendation{{ID: 1, Name: "Alice", Mutuals: 1}}, nil)
	svc.EXPECT().RecommendWeighted(mock.Anything, 1, 1).Return([]model.WeightedRecommendation{{ID: 3, Name: "Carol", Score: 1.5, Mutuals: 1, SharedInterests: 1, Shared: []string{"go"}}}, nil)
	svc.EXPECT().Communities(mock.Anything).Return([][]int{{1, 2}, {3}})
	svc.EXPECT().Suggest(mock.Anything, "C", 3).Return([]model.UserSummary{{ID: 3, Name: "Carol"}})
	svc.EXPECT().TopInfluencer(mock.Anything).Return(model.Influencer{ID: 1, Name: "Alice", Degree: 1}, nil)
	svc.EXPECT().FindByName(mock.Anything, "Bob").Return([]int{2})
	svc.EXPECT().Neighbors(mock.Anything, 2).Return([]int{1}, nil)
	svc.EXPECT().Degree(mock.Anything, 2).Return(1, nil)
	svc.EXPECT().Interests(mock.Anything, 2).Return([]string{}, nil)
	svc.EXPECT().Stats(mock.Anything).Return(model.Stats{Users: 3, Friendships: 1, Communities: 2, HighWater: 3})
	svc.EXPECT().ShortestPath(mock.Anything, 1, 9).Return(nil, fmt.Errorf("user 9: %w", model.ErrNotFound))
	svc.EXPECT().ExportDOT(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "graph SocialNetwork {\n  1 -- 2;\n}\n")
		return err
	})

	out, err := h.ListUsers(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, out.GetFields()["users"].GetListValue().GetValues(), 3)

	out, err = h.RecommendMutual(ctx, req(t, map[string]any{"id": 3, "k": 5}))
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": float64(1), "name": "Alice", "mutuals": float64(1)}},
		out.GetFields()["recommendations"].GetListValue().AsSlice())

	out, err = h.RecommendWeighted(ctx, req(t, map[string]any{"id": 1, "k": 1}))
	require.NoError(t, err)
	recs := out.GetFields()["recommendations"].GetListValue().AsSlice()
	require.Len(t, recs, 1)
	assert.Equal(t, 1.5, recs[0].(map[string]any)["score"])

	out, err = h.Communities(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{float64(1), float64(2)}, []any{float64(3)}}, out.GetFields()["communities"].GetListValue().AsSlice())

	out, err = h.Suggest(ctx, req(t, map[string]any{"prefix": "C", "k": 3}))
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": float64(3), "name": "Carol"}}, out.GetFields()["suggestions"].GetListValue().AsSlice())

	out, err = h.Influencer(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Alice", "degree": float64(1)}, out.GetFields()["influencer"].GetStructValue().AsMap())

	out, err = h.FindByName(ctx, req(t, map[string]any{"name": "Bob"}))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(2)}, out.GetFields()["ids"].GetListValue().AsSlice())

	out, err = h.Friends(ctx, req(t, map[string]any{"id": 2}))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1)}, out.GetFields()["friends"].GetListValue().AsSlice())
	assert.Equal(t, float64(1), out.GetFields()["degree"].GetNumberValue())

	out, err = h.GetInterests(ctx, req(t, map[string]any{"id": 2}))
	require.NoError(t, err)
	assert.Empty(t, out.GetFields()["interests"].GetListValue().GetValues())

	out, err = h.Stats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), out.GetFields()["communities"].GetNumberValue())

	out, err = h.ExportDOT(ctx, nil)
	require.NoError(t, err)
	assert.Contains(t, out.GetFields()["dot"].GetStringValue(), "1 -- 2;")

	_, err = h.ShortestPath(ctx, req(t, map[string]any{"a": 1, "b": 9}))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGraph_SaveLoad(t *testing.T) {
	ctx := context.Background()
	h, svc := newMockGraph(t)
	svc.EXPECT().Save(mock.Anything, "network.txt").Return(nil)
	svc.EXPECT().Load(mock.Anything, "s3://nightly").Return(nil)
	svc.EXPECT().Load(mock.Anything, "missing.txt").Return(fmt.Errorf("snapshot missing.txt: %w", model.ErrNotFound))
	svc.EXPECT().Save(mock.Anything, "pg://nightly").Return(fmt.Errorf("put: %w", model.ErrIO))

	out, err := h.Save(ctx, req(t, map[string]any{}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"saved": true, "path": "network.txt"}, out.AsMap())

	out, err = h.Load(ctx, req(t, map[string]any{"path": "s3://nightly"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"loaded": true, "path": "s3://nightly"}, out.AsMap())

	_, err = h.Load(ctx, req(t, map[string]any{"path": "missing.txt"}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.Save(ctx, req(t, map[string]any{"path": "pg://nightly"}))
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
	}{
		{name: "not found", in: model.ErrNotFound, wantCode: codes.NotFound},
		{name: "duplicate", in: model.ErrDuplicateID, wantCode: codes.AlreadyExists},
		{name: "self loop", in: model.ErrSelfLoop, wantCode: codes.InvalidArgument},
		{name: "invalid", in: model.ErrInvalidInput, wantCode: codes.InvalidArgument},
		{name: "read only", in: model.ErrReadOnly, wantCode: codes.PermissionDenied},
		{name: "io", in: model.ErrIO, wantCode: codes.Unavailable},
		{name: "status passthrough", in: status.Error(codes.Canceled, "gone"), wantCode: codes.Canceled},
		{name: "other", in: errors.New("boom"), wantCode: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, status.Code(handleError(tt.in)))
		})
	}
}
