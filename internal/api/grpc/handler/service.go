package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the graph service.
const ServiceName = "friendgraph.v1.Graph"

// Mutations lists the methods that change the graph.
var Mutations = []string{
	"AddUser",
	"AddUserWithID",
	"RemoveUser",
	"AddFriend",
	"RemoveFriend",
	"SetInterests",
	"AddInterests",
	"Load",
}

// FullMethod returns the gRPC path of method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// GraphServer is the server API of the graph service. Every request and
// response is a google.protobuf.Struct carrying a JSON object.
type GraphServer interface {
	AddUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddUserWithID(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddFriend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFriend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetInterests(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddInterests(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetInterests(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListUsers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Friends(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FindByName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecommendMutual(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecommendWeighted(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ShortestPath(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Communities(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Influencer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Suggest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Stats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Save(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Load(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportDOT(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(GraphServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GraphServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(GraphServer), ctx, req.(*structpb.Struct))
			})
		},
	}
}

// GraphServiceDesc describes the graph service for grpc.Server.RegisterService.
var GraphServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GraphServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("AddUser", GraphServer.AddUser),
		unary("AddUserWithID", GraphServer.AddUserWithID),
		unary("RemoveUser", GraphServer.RemoveUser),
		unary("AddFriend", GraphServer.AddFriend),
		unary("RemoveFriend", GraphServer.RemoveFriend),
		unary("SetInterests", GraphServer.SetInterests),
		unary("AddInterests", GraphServer.AddInterests),
		unary("GetInterests", GraphServer.GetInterests),
		unary("ListUsers", GraphServer.ListUsers),
		unary("GetUser", GraphServer.GetUser),
		unary("Friends", GraphServer.Friends),
		unary("FindByName", GraphServer.FindByName),
		unary("RecommendMutual", GraphServer.RecommendMutual),
		unary("RecommendWeighted", GraphServer.RecommendWeighted),
		unary("ShortestPath", GraphServer.ShortestPath),
		unary("Communities", GraphServer.Communities),
		unary("Influencer", GraphServer.Influencer),
		unary("Suggest", GraphServer.Suggest),
		unary("Stats", GraphServer.Stats),
		unary("Save", GraphServer.Save),
		unary("Load", GraphServer.Load),
		unary("ExportDOT", GraphServer.ExportDOT),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "friendgraph/v1/graph.proto",
}

// RegisterGraphServer registers srv on s.
func RegisterGraphServer(s grpc.ServiceRegistrar, srv GraphServer) {
	s.RegisterService(&GraphServiceDesc, srv)
}
