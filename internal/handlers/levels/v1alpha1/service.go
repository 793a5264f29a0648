// Package v1alpha1 handles the dungeon LevelService grpc interface
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified LevelService name used for routing and health checks
const ServiceName = "dungeon.api.v1alpha1.LevelService"

// Full method names
const (
	GenerateLevelMethod = "/" + ServiceName + "/GenerateLevel"
	GetLevelMethod      = "/" + ServiceName + "/GetLevel"
	DeleteLevelMethod   = "/" + ServiceName + "/DeleteLevel"
)

// LevelServiceServer is the server API for LevelService
type LevelServiceServer interface {
	GenerateLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterLevelServiceServer registers srv with the grpc server
func RegisterLevelServiceServer(s grpc.ServiceRegistrar, srv LevelServiceServer) {
	s.RegisterService(&LevelServiceDesc, srv)
}

// LevelServiceDesc describes LevelService for grpc.ServiceRegistrar
var LevelServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LevelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateLevel", Handler: unaryHandler(GenerateLevelMethod, LevelServiceServer.GenerateLevel)},
		{MethodName: "GetLevel", Handler: unaryHandler(GetLevelMethod, LevelServiceServer.GetLevel)},
		{MethodName: "DeleteLevel", Handler: unaryHandler(DeleteLevelMethod, LevelServiceServer.DeleteLevel)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dungeon/api/v1alpha1/level.proto",
}

type unaryMethod func(LevelServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LevelServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LevelServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// LevelServiceClient is the client API for LevelService
type LevelServiceClient interface {
	GenerateLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type levelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLevelServiceClient creates a LevelService client on cc
func NewLevelServiceClient(cc grpc.ClientConnInterface) LevelServiceClient {
	return &levelServiceClient{cc: cc}
}

func (c *levelServiceClient) GenerateLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GenerateLevelMethod, in, opts...)
}

func (c *levelServiceClient) GetLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetLevelMethod, in, opts...)
}

func (c *levelServiceClient) DeleteLevel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeleteLevelMethod, in, opts...)
}

func (c *levelServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
