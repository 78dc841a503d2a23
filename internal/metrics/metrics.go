// Package metrics exposes the Prometheus collectors of the graph service.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dtroode/friendgraph/internal/model"
)

const namespace = "friendgraph"

var (
	// Operations counts façade operations.
	// Labels: op (operation name), result (ok, not_found, invalid, rejected, io, read_only, error)
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "operations_total",
		Help:      "Total graph operations by result",
	}, []string{"op", "result"})

	Users = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "users",
		Help:      "Number of users currently in the graph",
	})

	Friendships = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "friendships",
		Help:      "Number of friendship edges currently in the graph",
	})

	// SnapshotBytes measures encoded snapshot sizes.
	// Labels: direction (save, load), backend (file, s3, pg)
	SnapshotBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "snapshot",
		Name:      "size_bytes",
		Help:      "Size of saved and loaded snapshots",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 10),
	}, []string{"direction", "backend"})

	// RequestDuration measures transport request latency.
	// Labels: transport (http, grpc), route, code
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"transport", "route", "code"})
)

// Result maps an operation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrReadOnly):
		return "read_only"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrDuplicateID), errors.Is(err, model.ErrSelfLoop):
		return "rejected"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, model.ErrIO):
		return "io"
	default:
		return "error"
	}
}

// Observe increments the operation counter for op.
func Observe(op string, err error) {
	Operations.WithLabelValues(op, Result(err)).Inc()
}

// SetSize publishes the current graph size.
func SetSize(users, friendships int) {
	Users.Set(float64(users))
	Friendships.Set(float64(friendships))
}
