package middleware

import (
	"context"
	"slices"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/friendgraph/internal/model"
)

// RejectMutations fails every call it intercepts with PermissionDenied.
// It is meant to be scoped with a selector built from MatchMethods.
func RejectMutations(_ context.Context, _ any, info *grpc.UnaryServerInfo, _ grpc.UnaryHandler) (any, error) {
	return nil, status.Error(codes.PermissionDenied, info.FullMethod+": "+model.ErrReadOnly.Error())
}

// MatchMethods returns a selector predicate matching the given full method names.
func MatchMethods(fullMethods ...string) func(context.Context, interceptors.CallMeta) bool {
	return func(_ context.Context, c interceptors.CallMeta) bool {
		return slices.Contains(fullMethods, c.FullMethod())
	}
}
