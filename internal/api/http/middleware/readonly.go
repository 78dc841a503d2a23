package middleware

import (
	"net/http"

	"github.com/dtroode/friendgraph/internal/api/http/handler"
	"github.com/dtroode/friendgraph/internal/model"
)

// ReadOnly rejects every request with 403 when enabled.
// It is mounted on the mutating routes only.
func ReadOnly(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handler.RespondError(w, http.StatusForbidden, handler.CodeReadOnly, model.ErrReadOnly.Error())
		})
	}
}
