package grpcid

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName    = "xdao.rinchi.identifier.v1.Identifier"
	identifyMethod = "/" + serviceName + "/Identify"
)

// IdentifierServer is the server API for the Identifier gRPC service.
//
// The service uses protobuf well-known wrapper types so no protoc/codegen
// step is needed: the request is the molecule text, the reply is the raw
// identifier exactly as the generator produced it.
type IdentifierServer interface {
	Identify(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// UnimplementedIdentifierServer can be embedded to have forward compatible implementations.
type UnimplementedIdentifierServer struct{}

func (UnimplementedIdentifierServer) Identify(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Identify not implemented")
}

// RegisterIdentifierServer registers the Identifier service on a gRPC server.
func RegisterIdentifierServer(s grpc.ServiceRegistrar, srv IdentifierServer) {
	s.RegisterService(&Identifier_ServiceDesc, srv)
}

// IdentifierClient is the client API for the Identifier gRPC service.
type IdentifierClient interface {
	Identify(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type identifierClient struct{ cc grpc.ClientConnInterface }

func NewIdentifierClient(cc grpc.ClientConnInterface) IdentifierClient {
	return &identifierClient{cc: cc}
}

func (c *identifierClient) Identify(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, identifyMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Identifier_Identify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentifierServer).Identify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: identifyMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IdentifierServer).Identify(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Identifier_ServiceDesc is the grpc.ServiceDesc for the Identifier service.
var Identifier_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*IdentifierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Identify", Handler: _Identifier_Identify_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "identifier.proto",
}
