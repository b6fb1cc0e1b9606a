// Package converterv1 defines the roman.v1.ConverterService gRPC contract.
//
// Requests and responses use the protobuf well-known wrapper types, so the
// service needs no message definitions of its own.
package converterv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified service name, also used as the health
// check service key.
const ServiceName = "roman.v1.ConverterService"

const (
	ConverterService_ToNumber_FullMethodName = "/roman.v1.ConverterService/ToNumber"
	ConverterService_ToRoman_FullMethodName  = "/roman.v1.ConverterService/ToRoman"
)

// ConverterServiceClient is the client API for ConverterService.
type ConverterServiceClient interface {
	// ToNumber decodes a Roman numeral.
	ToNumber(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error)
	// ToRoman encodes an integer in [0, 3999].
	ToRoman(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type converterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewConverterServiceClient wraps a connection in the ConverterService client.
func NewConverterServiceClient(cc grpc.ClientConnInterface) ConverterServiceClient {
	return &converterServiceClient{cc}
}

func (c *converterServiceClient) ToNumber(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
	out := new(wrapperspb.Int32Value)
	if err := c.cc.Invoke(ctx, ConverterService_ToNumber_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *converterServiceClient) ToRoman(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ConverterService_ToRoman_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ConverterServiceServer is the server API for ConverterService.
type ConverterServiceServer interface {
	ToNumber(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error)
	ToRoman(context.Context, *wrapperspb.Int32Value) (*wrapperspb.StringValue, error)
}

// UnimplementedConverterServiceServer returns Unimplemented for every method.
type UnimplementedConverterServiceServer struct{}

func (UnimplementedConverterServiceServer) ToNumber(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToNumber not implemented")
}

func (UnimplementedConverterServiceServer) ToRoman(context.Context, *wrapperspb.Int32Value) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToRoman not implemented")
}

// RegisterConverterServiceServer attaches srv to s.
func RegisterConverterServiceServer(s grpc.ServiceRegistrar, srv ConverterServiceServer) {
	s.RegisterService(&ConverterService_ServiceDesc, srv)
}

func _ConverterService_ToNumber_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServiceServer).ToNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConverterService_ToNumber_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ToNumber(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConverterService_ToRoman_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServiceServer).ToRoman(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConverterService_ToRoman_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ToRoman(ctx, req.(*wrapperspb.Int32Value))
	}
	return interceptor(ctx, in, info, handler)
}

// ConverterService_ServiceDesc is the grpc.ServiceDesc for ConverterService.
var ConverterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConverterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ToNumber",
			Handler:    _ConverterService_ToNumber_Handler,
		},
		{
			MethodName: "ToRoman",
			Handler:    _ConverterService_ToRoman_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
