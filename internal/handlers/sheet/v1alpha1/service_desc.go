package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sheet.v1alpha1.SheetService"

// Full method names
const (
	MethodComputeSheet    = "/" + ServiceName + "/ComputeSheet"
	MethodOpenSession     = "/" + ServiceName + "/OpenSession"
	MethodUpdateSelection = "/" + ServiceName + "/UpdateSelection"
	MethodGetSession      = "/" + ServiceName + "/GetSession"
	MethodCloseSession    = "/" + ServiceName + "/CloseSession"
)

// SheetServiceServer is the server API for the sheet service. Requests and
// responses are google.protobuf.Struct messages.
type SheetServiceServer interface {
	ComputeSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	OpenSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSelection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CloseSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

type unaryMethod func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SheetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SheetServiceDesc is the grpc.ServiceDesc for the sheet service
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ComputeSheet",
			Handler:    unaryHandler(MethodComputeSheet, SheetServiceServer.ComputeSheet),
		},
		{
			MethodName: "OpenSession",
			Handler:    unaryHandler(MethodOpenSession, SheetServiceServer.OpenSession),
		},
		{
			MethodName: "UpdateSelection",
			Handler:    unaryHandler(MethodUpdateSelection, SheetServiceServer.UpdateSelection),
		},
		{
			MethodName: "GetSession",
			Handler:    unaryHandler(MethodGetSession, SheetServiceServer.GetSession),
		},
		{
			MethodName: "CloseSession",
			Handler:    unaryHandler(MethodCloseSession, SheetServiceServer.CloseSession),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sheet/v1alpha1/sheet.proto",
}

// SheetServiceClient is the client API for the sheet service
type SheetServiceClient interface {
	ComputeSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	OpenSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateSelection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CloseSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client on cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc: cc}
}

func (c *sheetServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ComputeSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodComputeSheet, in, opts...)
}

func (c *sheetServiceClient) OpenSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodOpenSession, in, opts...)
}

func (c *sheetServiceClient) UpdateSelection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUpdateSelection, in, opts...)
}

func (c *sheetServiceClient) GetSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetSession, in, opts...)
}

func (c *sheetServiceClient) CloseSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCloseSession, in, opts...)
}
