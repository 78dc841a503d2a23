package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dtroode/friendgraph/internal/graph"
	"github.com/dtroode/friendgraph/internal/logger"
	"github.com/dtroode/friendgraph/internal/metrics"
	"github.com/dtroode/friendgraph/internal/model"
	"github.com/dtroode/friendgraph/internal/prefix"
	"github.com/dtroode/friendgraph/internal/storage/file"
)

// Network is the entry point to a single social graph. All methods are safe
// for concurrent use: queries share a read lock, mutations take it exclusively.
type Network struct {
	mu     sync.RWMutex
	graph  *graph.Graph
	index  *prefix.Index
	stores map[string]model.SnapshotStore
	logger *logger.Logger
}

// NewNetwork creates an empty network. Snapshot paths are routed to stores by
// scheme; a local file store is used for SchemeFile unless one is supplied.
func NewNetwork(stores map[string]model.SnapshotStore, logger *logger.Logger) *Network {
	routed := make(map[string]model.SnapshotStore, len(stores)+1)
	for scheme, store := range stores {
		routed[scheme] = store
	}
	if _, ok := routed[SchemeFile]; !ok {
		routed[SchemeFile] = file.NewStore()
	}

	return &Network{
		graph:  graph.New(),
		index:  prefix.New(),
		stores: routed,
		logger: logger,
	}
}

func (n *Network) AddUser(ctx context.Context, name string) (id int, err error) {
	defer func() { metrics.Observe("add_user", err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	id, err = n.graph.AddUser(name)
	if err != nil {
		return 0, fmt.Errorf("failed to add user: %w", err)
	}
	n.index.Insert(id, name)
	n.publishSize()

	n.logger.Debug("user added", "id", id)
	return id, nil
}

func (n *Network) AddUserWithID(ctx context.Context, name string, id int) (_ int, err error) {
	defer func() { metrics.Observe("add_user_with_id", err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	id, err = n.graph.AddUserWithID(name, id)
	if err != nil {
		return 0, fmt.Errorf("failed to add user: %w", err)
	}
	n.index.Insert(id, name)
	n.publishSize()

	n.logger.Debug("user added", "id", id)
	return id, nil
}

// RemoveUser deletes id and all of its friendships. It reports false when the
// user did not exist.
func (n *Network) RemoveUser(ctx context.Context, id int) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	removed := n.graph.RemoveUser(id)
	if removed {
		n.index.Remove(id)
		n.publishSize()
		n.logger.Debug("user removed", "id", id)
	}
	metrics.Observe("remove_user", nil)
	return removed, nil
}

func (n *Network) AddFriend(ctx context.Context, a, b int) (err error) {
	defer func() { metrics.Observe("add_friend", err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	created, err := n.graph.AddFriend(a, b)
	if err != nil {
		return fmt.Errorf("failed to add friendship: %w", err)
	}
	if created {
		n.publishSize()
	}
	return nil
}

// RemoveFriend reports false when a and b were not friends.
func (n *Network) RemoveFriend(ctx context.Context, a, b int) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	removed := n.graph.RemoveFriend(a, b)
	if removed {
		n.publishSize()
	}
	metrics.Observe("remove_friend", nil)
	return removed, nil
}

// SetInterests replaces the interests of id with the comma-separated tags in csv.
func (n *Network) SetInterests(ctx context.Context, id int, csv string) (err error) {
	defer func() { metrics.Observe("set_interests", err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.graph.SetInterests(id, graph.SplitTags(csv)); err != nil {
		return fmt.Errorf("failed to set interests: %w", err)
	}
	return nil
}

// AddInterests merges the comma-separated tags in csv into the interests of id.
func (n *Network) AddInterests(ctx context.Context, id int, csv string) (err error) {
	defer func() { metrics.Observe("add_interests", err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.graph.AddInterests(id, graph.SplitTags(csv)); err != nil {
		return fmt.Errorf("failed to add interests: %w", err)
	}
	return nil
}

func (n *Network) Interests(ctx context.Context, id int) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Interests(id)
}

func (n *Network) Users(ctx context.Context) []model.UserSummary {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Users()
}

func (n *Network) User(ctx context.Context, id int) (model.UserInfo, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.User(id)
}

func (n *Network) FindByName(ctx context.Context, name string) []int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.FindByName(name)
}

func (n *Network) Neighbors(ctx context.Context, id int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Neighbors(id)
}

func (n *Network) Degree(ctx context.Context, id int) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Degree(id)
}

func (n *Network) RecommendMutual(ctx context.Context, id, k int) ([]model.MutualRecommendation, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.RecommendMutual(id, k)
}

func (n *Network) RecommendWeighted(ctx context.Context, id, k int) ([]model.WeightedRecommendation, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.RecommendWeighted(id, k)
}

func (n *Network) ShortestPath(ctx context.Context, a, b int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.ShortestPath(a, b)
}

func (n *Network) Communities(ctx context.Context) [][]int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.ConnectedComponents()
}

func (n *Network) TopInfluencer(ctx context.Context) (model.Influencer, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, degree, err := n.graph.TopInfluencer()
	if err != nil {
		return model.Influencer{}, err
	}
	return model.Influencer{ID: u.ID, Name: u.Name, Degree: degree}, nil
}

// Suggest returns up to k users whose names start with prefix, ignoring case.
func (n *Network) Suggest(ctx context.Context, prefix string, k int) []model.UserSummary {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.index.Suggest(prefix, k)
}

func (n *Network) Stats(ctx context.Context) model.Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return model.Stats{
		Users:       n.graph.Len(),
		Friendships: n.graph.EdgeCount(),
		Communities: len(n.graph.ConnectedComponents()),
		HighWater:   n.graph.HighWater(),
	}
}

// publishSize must be called with the write lock held.
func (n *Network) publishSize() {
	metrics.SetSize(n.graph.Len(), n.graph.EdgeCount())
}

func splitPath(path string) (scheme, name string) {
	if i := strings.Index(path, "://"); i > 0 {
		return strings.ToLower(path[:i]), path[i+len("://"):]
	}
	return SchemeFile, path
}
