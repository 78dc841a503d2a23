package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/friendgraph/internal/logger"
	"github.com/dtroode/friendgraph/internal/model"
)

// NetworkService is the graph façade served over HTTP.
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

// Network handles the /api routes.
type Network struct {
	service      NetworkService
	validate     *validator.Validate
	snapshotPath string
	logger       *logger.Logger
}

// NewNetwork creates a Network handler. snapshotPath is used by save and load
// requests that carry no path.
func NewNetwork(service NetworkService, snapshotPath string, logger *logger.Logger) *Network {
	return &Network{
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		snapshotPath: snapshotPath,
		logger:       logger,
	}
}

// AddUser handles POST /api/add_user.
func (h *Network) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	id, err := h.service.AddUser(r.Context(), req.Name)
	if err != nil {
		h.logger.Debug("HTTP handler: add user rejected", "error", err)
		RespondJSON(w, http.StatusOK, idResponse{ID: -1, Rejection: reject(err)})
		return
	}
	RespondJSON(w, http.StatusOK, idResponse{ID: id})
}

// AddUserWithID handles POST /api/add_user_with_id.
func (h *Network) AddUserWithID(w http.ResponseWriter, r *http.Request) {
	var req addUserWithIDRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	id, err := h.service.AddUserWithID(r.Context(), req.Name, *req.ID)
	if err != nil {
		h.logger.Debug("HTTP handler: add user with id rejected", "id", *req.ID, "error", err)
		RespondJSON(w, http.StatusOK, idResponse{ID: -1, Rejection: reject(err)})
		return
	}
	RespondJSON(w, http.StatusOK, idResponse{ID: id})
}

// RemoveUser handles POST /api/remove_user.
func (h *Network) RemoveUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	removed, err := h.service.RemoveUser(r.Context(), *req.ID)
	RespondJSON(w, http.StatusOK, removedResponse{Removed: removed, Rejection: reject(err)})
}

// AddFriend handles POST /api/add_friend.
func (h *Network) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req friendRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	err := h.service.AddFriend(r.Context(), *req.A, *req.B)
	RespondJSON(w, http.StatusOK, addedResponse{Added: err == nil, Rejection: reject(err)})
}

// RemoveFriend handles POST /api/remove_friend.
func (h *Network) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	var req friendRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	removed, err := h.service.RemoveFriend(r.Context(), *req.A, *req.B)
	RespondJSON(w, http.StatusOK, removedResponse{Removed: removed, Rejection: reject(err)})
}

// AddInterests handles POST /api/add_interests. Tags are merged into the
// existing interests.
func (h *Network) AddInterests(w http.ResponseWriter, r *http.Request) {
	h.updateInterests(w, r, h.service.AddInterests)
}

// SetInterests handles POST /api/set_interests. Tags replace the existing
// interests.
func (h *Network) SetInterests(w http.ResponseWriter, r *http.Request) {
	h.updateInterests(w, r, h.service.SetInterests)
}

func (h *Network) updateInterests(w http.ResponseWriter, r *http.Request, update func(context.Context, int, string) error) {
	var req interestsRequest
	if err := h.decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	err := update(r.Context(), *req.ID, string(req.Interests))
	RespondJSON(w, http.StatusOK, updatedResponse{Updated: err == nil, Rejection: reject(err)})
}

// GetInterests handles GET /api/get_interests/{id}.
func (h *Network) GetInterests(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	tags, err := h.service.Interests(r.Context(), id)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"interests": tags})
}

// ListUsers handles GET /api/list_users.
func (h *Network) ListUsers(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]any{"users": h.service.Users(r.Context())})
}

// GetUser handles GET /api/user/{id}.
func (h *Network) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	user, err := h.service.User(r.Context(), id)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Friends handles GET /api/friends/{id}.
func (h *Network) Friends(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	friends, err := h.service.Neighbors(r.Context(), id)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	degree, err := h.service.Degree(r.Context(), id)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"friends": friends, "degree": degree})
}

// FindByName handles GET /api/find?name=.
func (h *Network) FindByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, "name is required")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"ids": h.service.FindByName(r.Context(), name)})
}

// RecommendMutual handles GET /api/recommend_mutual/{id}/{k}.
func (h *Network) RecommendMutual(w http.ResponseWriter, r *http.Request) {
	id, k, err := idAndK(r)
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	recs, err := h.service.RecommendMutual(r.Context(), id, k)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

// RecommendWeighted handles GET /api/recommend_weighted/{id}/{k}.
func (h *Network) RecommendWeighted(w http.ResponseWriter, r *http.Request) {
	id, k, err := idAndK(r)
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	recs, err := h.service.RecommendWeighted(r.Context(), id, k)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func idAndK(r *http.Request) (int, int, error) {
	id, err := intParam(r, "id")
	if err != nil {
		return 0, 0, err
	}
	k, err := intParam(r, "k")
	if err != nil {
		return 0, 0, err
	}
	return id, k, nil
}

// ShortestPath handles GET /api/shortest_path/{a}/{b}.
func (h *Network) ShortestPath(w http.ResponseWriter, r *http.Request) {
	a, err := intParam(r, "a")
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}
	b, err := intParam(r, "b")
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	path, err := h.service.ShortestPath(r.Context(), a, b)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"path": path})
}

// Communities handles GET /api/communities.
func (h *Network) Communities(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]any{"communities": h.service.Communities(r.Context())})
}

// Influencer handles GET /api/influencer.
func (h *Network) Influencer(w http.ResponseWriter, r *http.Request) {
	top, err := h.service.TopInfluencer(r.Context())
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"influencer": top})
}

// Suggest handles GET /api/suggest/{prefix}/{k} and GET /api/suggest?prefix=&k=.
func (h *Network) Suggest(w http.ResponseWriter, r *http.Request) {
	prefix, rawK := chi.URLParam(r, "prefix"), chi.URLParam(r, "k")
	if rawK == "" {
		prefix, rawK = r.URL.Query().Get("prefix"), r.URL.Query().Get("k")
	} else if r.URL.RawPath != "" {
		// chi matched the escaped path, so the segment is still encoded.
		p, err := url.PathUnescape(prefix)
		if err != nil {
			RespondError(w, http.StatusBadRequest, CodeInvalidInput, "malformed prefix")
			return
		}
		prefix = p
	}

	k, err := strconv.Atoi(rawK)
	if err != nil {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, "k must be an integer")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{"suggestions": h.service.Suggest(r.Context(), prefix, k)})
}

// Stats handles GET /api/stats.
func (h *Network) Stats(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, h.service.Stats(r.Context()))
}

// Save handles POST /api/save.
func (h *Network) Save(w http.ResponseWriter, r *http.Request) {
	path, ok := h.snapshotRequest(w, r)
	if !ok {
		return
	}

	err := h.service.Save(r.Context(), path)
	RespondJSON(w, http.StatusOK, savedResponse{Saved: err == nil, Path: path, Rejection: reject(err)})
}

// Load handles POST /api/load.
func (h *Network) Load(w http.ResponseWriter, r *http.Request) {
	path, ok := h.snapshotRequest(w, r)
	if !ok {
		return
	}

	err := h.service.Load(r.Context(), path)
	RespondJSON(w, http.StatusOK, loadedResponse{Loaded: err == nil, Path: path, Rejection: reject(err)})
}

func (h *Network) snapshotRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req snapshotRequest
	if err := h.decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return "", false
	}
	if req.Path == "" {
		req.Path = h.snapshotPath
	}
	return req.Path, true
}

// ExportDOT handles GET /api/export/dot.
func (h *Network) ExportDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	if err := h.service.ExportDOT(r.Context(), w); err != nil {
		h.logger.Error("HTTP handler: export dot failed", "error", err)
	}
}

type idResponse struct {
	ID int `json:"id"`
	Rejection
}

type removedResponse struct {
	Removed bool `json:"removed"`
	Rejection
}

type addedResponse struct {
	Added bool `json:"added"`
	Rejection
}

type updatedResponse struct {
	Updated bool `json:"updated"`
	Rejection
}

type savedResponse struct {
	Saved bool   `json:"saved"`
	Path  string `json:"path"`
	Rejection
}

type loadedResponse struct {
	Loaded bool   `json:"loaded"`
	Path   string `json:"path"`
	Rejection
}
