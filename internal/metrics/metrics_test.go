package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/friendgraph/internal/model"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "ok"},
		{name: "not found", err: fmt.Errorf("user 3: %w", model.ErrNotFound), want: "not_found"},
		{name: "duplicate", err: model.ErrDuplicateID, want: "rejected"},
		{name: "self loop", err: model.ErrSelfLoop, want: "rejected"},
		{name: "invalid", err: model.ErrInvalidInput, want: "invalid"},
		{name: "io", err: model.ErrIO, want: "io"},
		{name: "read only", err: model.ErrReadOnly, want: "read_only"},
		{name: "other", err: errors.New("boom"), want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.err))
		})
	}
}

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(Operations.WithLabelValues("metrics_test", "ok"))
	Observe("metrics_test", nil)
	Observe("metrics_test", nil)
	after := testutil.ToFloat64(Operations.WithLabelValues("metrics_test", "ok"))

	assert.Equal(t, before+2, after)
}

func TestSetSize(t *testing.T) {
	SetSize(4, 7)

	assert.Equal(t, float64(4), testutil.ToFloat64(Users))
	assert.Equal(t, float64(7), testutil.ToFloat64(Friendships))
}
