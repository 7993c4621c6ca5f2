// Package textkit defines the textkit.v1.TextKitService gRPC contract.
//
// Messages travel as google.protobuf.Struct values; the typed request and
// response types in this package convert to and from them.
package textkit

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "textkit.v1.TextKitService"

const (
	TextKitService_IsEmpty_FullMethodName             = "/textkit.v1.TextKitService/IsEmpty"
	TextKitService_UpperFirst_FullMethodName          = "/textkit.v1.TextKitService/UpperFirst"
	TextKitService_LowerFirst_FullMethodName          = "/textkit.v1.TextKitService/LowerFirst"
	TextKitService_StandardURLPattern_FullMethodName  = "/textkit.v1.TextKitService/StandardURLPattern"
	TextKitService_StandardURLPatterns_FullMethodName = "/textkit.v1.TextKitService/StandardURLPatterns"
	TextKitService_Tokenize_FullMethodName            = "/textkit.v1.TextKitService/Tokenize"
	TextKitService_ToStringArray_FullMethodName       = "/textkit.v1.TextKitService/ToStringArray"
)

// TextKitServiceClient is the client API for TextKitService.
type TextKitServiceClient interface {
	IsEmpty(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpperFirst(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	LowerFirst(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	StandardURLPattern(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	StandardURLPatterns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Tokenize(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ToStringArray(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type textKitServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTextKitServiceClient creates a client stub on cc
func NewTextKitServiceClient(cc grpc.ClientConnInterface) TextKitServiceClient {
	return &textKitServiceClient{cc}
}

func (c *textKitServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *textKitServiceClient) IsEmpty(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_IsEmpty_FullMethodName, in, opts)
}

func (c *textKitServiceClient) UpperFirst(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_UpperFirst_FullMethodName, in, opts)
}

func (c *textKitServiceClient) LowerFirst(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_LowerFirst_FullMethodName, in, opts)
}

func (c *textKitServiceClient) StandardURLPattern(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_StandardURLPattern_FullMethodName, in, opts)
}

func (c *textKitServiceClient) StandardURLPatterns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_StandardURLPatterns_FullMethodName, in, opts)
}

func (c *textKitServiceClient) Tokenize(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_Tokenize_FullMethodName, in, opts)
}

func (c *textKitServiceClient) ToStringArray(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TextKitService_ToStringArray_FullMethodName, in, opts)
}

// TextKitServiceServer is the server API for TextKitService.
// Implementations must embed UnimplementedTextKitServiceServer.
type TextKitServiceServer interface {
	IsEmpty(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpperFirst(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LowerFirst(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StandardURLPattern(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StandardURLPatterns(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Tokenize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToStringArray(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedTextKitServiceServer()
}

// UnimplementedTextKitServiceServer answers every method with Unimplemented.
type UnimplementedTextKitServiceServer struct{}

func (UnimplementedTextKitServiceServer) IsEmpty(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method IsEmpty not implemented")
}
func (UnimplementedTextKitServiceServer) UpperFirst(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpperFirst not implemented")
}
func (UnimplementedTextKitServiceServer) LowerFirst(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method LowerFirst not implemented")
}
func (UnimplementedTextKitServiceServer) StandardURLPattern(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method StandardURLPattern not implemented")
}
func (UnimplementedTextKitServiceServer) StandardURLPatterns(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method StandardURLPatterns not implemented")
}
func (UnimplementedTextKitServiceServer) Tokenize(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Tokenize not implemented")
}
func (UnimplementedTextKitServiceServer) ToStringArray(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ToStringArray not implemented")
}
func (UnimplementedTextKitServiceServer) mustEmbedUnimplementedTextKitServiceServer() {}

// RegisterTextKitServiceServer registers srv on s
func RegisterTextKitServiceServer(s grpc.ServiceRegistrar, srv TextKitServiceServer) {
	s.RegisterService(&TextKitService_ServiceDesc, srv)
}

type unaryMethod func(TextKitServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a server method to grpc.MethodDesc.Handler
func unaryHandler(fullMethod string, call unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TextKitServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(TextKitServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TextKitService_ServiceDesc is the grpc.ServiceDesc for TextKitService
var TextKitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TextKitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IsEmpty",
			Handler:    unaryHandler(TextKitService_IsEmpty_FullMethodName, TextKitServiceServer.IsEmpty),
		},
		{
			MethodName: "UpperFirst",
			Handler:    unaryHandler(TextKitService_UpperFirst_FullMethodName, TextKitServiceServer.UpperFirst),
		},
		{
			MethodName: "LowerFirst",
			Handler:    unaryHandler(TextKitService_LowerFirst_FullMethodName, TextKitServiceServer.LowerFirst),
		},
		{
			MethodName: "StandardURLPattern",
			Handler:    unaryHandler(TextKitService_StandardURLPattern_FullMethodName, TextKitServiceServer.StandardURLPattern),
		},
		{
			MethodName: "StandardURLPatterns",
			Handler:    unaryHandler(TextKitService_StandardURLPatterns_FullMethodName, TextKitServiceServer.StandardURLPatterns),
		},
		{
			MethodName: "Tokenize",
			Handler:    unaryHandler(TextKitService_Tokenize_FullMethodName, TextKitServiceServer.Tokenize),
		},
		{
			MethodName: "ToStringArray",
			Handler:    unaryHandler(TextKitService_ToStringArray_FullMethodName, TextKitServiceServer.ToStringArray),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "textkit/v1/textkit.proto",
}
