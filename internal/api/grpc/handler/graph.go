package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/friendgraph/internal/logger"
	"github.com/dtroode/friendgraph/internal/model"
)

var _ GraphServer = (*Graph)(nil)

// NetworkService defines the graph operations served over gRPC.
type NetworkService interface {
	AddUser(ctx context.Context, name string) (int, error)
	AddUserWithID(ctx context.Context, name string, id int) (int, error)
	RemoveUser(ctx context.Context, id int) (bool, error)
	AddFriend(ctx context.Context, a, b int) error
	RemoveFriend(ctx context.Context, a, b int) (bool, error)
	SetInterests(ctx context.Context, id int, csv string) error
	AddInterests(ctx context.Context, id int, csv string) error
	Interests(ctx context.Context, id int) ([]string, error)
	Users(ctx context.Context) []model.UserSummary
	User(ctx context.Context, id int) (model.UserInfo, error)
	FindByName(ctx context.Context, name string) []int
	Neighbors(ctx context.Context, id int) ([]int, error)
	Degree(ctx context.Context, id int) (int, error)
	RecommendMutual(ctx context.Context, id, k int) ([]model.MutualRecommendation, error)
	RecommendWeighted(ctx context.Context, id, k int) ([]model.WeightedRecommendation, error)
	ShortestPath(ctx context.Context, a, b int) ([]int, error)
	Communities(ctx context.Context) [][]int
	TopInfluencer(ctx context.Context) (model.Influencer, error)
	Suggest(ctx context.Context, prefix string, k int) []model.UserSummary
	Stats(ctx context.Context) model.Stats
	Save(ctx context.Context, path string) error
	Load(ctx context.Context, path string) error
	ExportDOT(ctx context.Context, w io.Writer) error
}

// Graph handles gRPC endpoints of the graph service.
type Graph struct {
	service      NetworkService
	validate     *validator.Validate
	snapshotPath string
	logger       *logger.Logger
}

// NewGraph creates a new Graph handler.
func NewGraph(service NetworkService, snapshotPath string, logger *logger.Logger) *Graph {
	return &Graph{
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		snapshotPath: snapshotPath,
		logger:       logger,
	}
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

type nameIDRequest struct {
	Name string `json:"name" validate:"required"`
	ID   *int   `json:"id" validate:"required"`
}

type idRequest struct {
	ID *int `json:"id" validate:"required"`
}

type pairRequest struct {
	A *int `json:"a" validate:"required"`
	B *int `json:"b" validate:"required"`
}

type interestsRequest struct {
	ID        *int `json:"id" validate:"required"`
	Interests any  `json:"interests"`
}

type topRequest struct {
	ID *int `json:"id" validate:"required"`
	K  *int `json:"k" validate:"required"`
}

type suggestRequest struct {
	Prefix string `json:"prefix"`
	K      *int   `json:"k" validate:"required"`
}

type pathRequest struct {
	Path string `json:"path"`
}

func (h *Graph) parse(req *structpb.Struct, dst any) error {
	if err := decodeRequest(req, dst); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := h.validate.Struct(dst); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func (h *Graph) reply(v any) (*structpb.Struct, error) {
	out, err := encodeResponse(v)
	if err != nil {
		h.logger.Error("Graph handler: failed to encode response", "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}

func (h *Graph) AddUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in nameRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	id, err := h.service.AddUser(ctx, in.Name)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]int{"id": id})
}

func (h *Graph) AddUserWithID(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in nameIDRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	id, err := h.service.AddUserWithID(ctx, in.Name, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]int{"id": id})
}

func (h *Graph) RemoveUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	removed, err := h.service.RemoveUser(ctx, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]bool{"removed": removed})
}

func (h *Graph) AddFriend(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in pairRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	if err := h.service.AddFriend(ctx, *in.A, *in.B); err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]bool{"added": true})
}

func (h *Graph) RemoveFriend(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in pairRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	removed, err := h.service.RemoveFriend(ctx, *in.A, *in.B)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]bool{"removed": removed})
}

func (h *Graph) SetInterests(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.updateInterests(ctx, req, h.service.SetInterests)
}

func (h *Graph) AddInterests(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.updateInterests(ctx, req, h.service.AddInterests)
}

func (h *Graph) updateInterests(ctx context.Context, req *structpb.Struct, update func(context.Context, int, string) error) (*structpb.Struct, error) {
	var in interestsRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	csv, err := joinTags(in.Interests)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := update(ctx, *in.ID, csv); err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]bool{"updated": true})
}

// joinTags accepts a comma-separated string or a list of strings.
func joinTags(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []any:
		tags := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("interests must be strings")
			}
			tags = append(tags, s)
		}
		return strings.Join(tags, ","), nil
	default:
		return "", fmt.Errorf("interests must be a string or a list of strings")
	}
}

func (h *Graph) GetInterests(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	tags, err := h.service.Interests(ctx, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"interests": tags})
}

func (h *Graph) ListUsers(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return h.reply(map[string]any{"users": h.service.Users(ctx)})
}

func (h *Graph) GetUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	user, err := h.service.User(ctx, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"user": user})
}

func (h *Graph) Friends(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	friends, err := h.service.Neighbors(ctx, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	degree, err := h.service.Degree(ctx, *in.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"friends": friends, "degree": degree})
}

func (h *Graph) FindByName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in nameRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	return h.reply(map[string]any{"ids": h.service.FindByName(ctx, in.Name)})
}

func (h *Graph) RecommendMutual(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in topRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	recs, err := h.service.RecommendMutual(ctx, *in.ID, *in.K)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"recommendations": recs})
}

func (h *Graph) RecommendWeighted(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in topRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	recs, err := h.service.RecommendWeighted(ctx, *in.ID, *in.K)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"recommendations": recs})
}

func (h *Graph) ShortestPath(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in pairRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	path, err := h.service.ShortestPath(ctx, *in.A, *in.B)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"path": path})
}

func (h *Graph) Communities(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return h.reply(map[string]any{"communities": h.service.Communities(ctx)})
}

func (h *Graph) Influencer(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	top, err := h.service.TopInfluencer(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"influencer": top})
}

func (h *Graph) Suggest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in suggestRequest
	if err := h.parse(req, &in); err != nil {
		return nil, err
	}
	return h.reply(map[string]any{"suggestions": h.service.Suggest(ctx, in.Prefix, *in.K)})
}

func (h *Graph) Stats(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return h.reply(h.service.Stats(ctx))
}

func (h *Graph) Save(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	path, err := h.snapshotPathOf(req)
	if err != nil {
		return nil, err
	}
	if err := h.service.Save(ctx, path); err != nil {
		h.logger.Error("Graph handler: save failed", "path", path, "error", err)
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"saved": true, "path": path})
}

func (h *Graph) Load(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	path, err := h.snapshotPathOf(req)
	if err != nil {
		return nil, err
	}
	if err := h.service.Load(ctx, path); err != nil {
		h.logger.Error("Graph handler: load failed", "path", path, "error", err)
		return nil, handleError(err)
	}
	return h.reply(map[string]any{"loaded": true, "path": path})
}

func (h *Graph) snapshotPathOf(req *structpb.Struct) (string, error) {
	var in pathRequest
	if err := h.parse(req, &in); err != nil {
		return "", err
	}
	if in.Path == "" {
		return h.snapshotPath, nil
	}
	return in.Path, nil
}

func (h *Graph) ExportDOT(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	var buf bytes.Buffer
	if err := h.service.ExportDOT(ctx, &buf); err != nil {
		return nil, handleError(err)
	}
	return h.reply(map[string]string{"dot": buf.String()})
}
