package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExtentIndexClient is the client API for the ExtentIndex service.
type ExtentIndexClient interface {
	InsertExtent(ctx context.Context, in *InsertExtentRequest, opts ...grpc.CallOption) (*InsertExtentResponse, error)
	RemoveExtent(ctx context.Context, in *RemoveExtentRequest, opts ...grpc.CallOption) (*RemoveExtentResponse, error)
	LookupBlock(ctx context.Context, in *LookupBlockRequest, opts ...grpc.CallOption) (*LookupBlockResponse, error)
	NextMapped(ctx context.Context, in *NextMappedRequest, opts ...grpc.CallOption) (*NextMappedResponse, error)
	ListExtents(ctx context.Context, in *ListExtentsRequest, opts ...grpc.CallOption) (ExtentIndex_ListExtentsClient, error)
	Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
}

type extentIndexClient struct {
	cc grpc.ClientConnInterface
}

func NewExtentIndexClient(cc grpc.ClientConnInterface) ExtentIndexClient {
	return &extentIndexClient{cc}
}

func (c *extentIndexClient) InsertExtent(ctx context.Context, in *InsertExtentRequest, opts ...grpc.CallOption) (*InsertExtentResponse, error) {
	out := new(InsertExtentResponse)
	err := c.cc.Invoke(ctx, "/extentindex.v1.ExtentIndex/InsertExtent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extentIndexClient) RemoveExtent(ctx context.Context, in *RemoveExtentRequest, opts ...grpc.CallOption) (*RemoveExtentResponse, error) {
	out := new(RemoveExtentResponse)
	err := c.cc.Invoke(ctx, "/extentindex.v1.ExtentIndex/RemoveExtent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extentIndexClient) LookupBlock(ctx context.Context, in *LookupBlockRequest, opts ...grpc.CallOption) (*LookupBlockResponse, error) {
	out := new(LookupBlockResponse)
	err := c.cc.Invoke(ctx, "/extentindex.v1.ExtentIndex/LookupBlock", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extentIndexClient) NextMapped(ctx context.Context, in *NextMappedRequest, opts ...grpc.CallOption) (*NextMappedResponse, error) {
	out := new(NextMappedResponse)
	err := c.cc.Invoke(ctx, "/extentindex.v1.ExtentIndex/NextMapped", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extentIndexClient) ListExtents(ctx context.Context, in *ListExtentsRequest, opts ...grpc.CallOption) (ExtentIndex_ListExtentsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ExtentIndex_ServiceDesc.Streams[0], "/extentindex.v1.ExtentIndex/ListExtents", opts...)
	if err != nil {
		return nil, err
	}
	x := &extentIndexListExtentsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ExtentIndex_ListExtentsClient interface {
	Recv() (*Extent, error)
	grpc.ClientStream
}

type extentIndexListExtentsClient struct {
	grpc.ClientStream
}

func (x *extentIndexListExtentsClient) Recv() (*Extent, error) {
	m := new(Extent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *extentIndexClient) Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	out := new(StatsResponse)
	err := c.cc.Invoke(ctx, "/extentindex.v1.ExtentIndex/Stats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtentIndexServer is the server API for the ExtentIndex service.
// Implementations must embed UnimplementedExtentIndexServer.
type ExtentIndexServer interface {
	InsertExtent(context.Context, *InsertExtentRequest) (*InsertExtentResponse, error)
	RemoveExtent(context.Context, *RemoveExtentRequest) (*RemoveExtentResponse, error)
	LookupBlock(context.Context, *LookupBlockRequest) (*LookupBlockResponse, error)
	NextMapped(context.Context, *NextMappedRequest) (*NextMappedResponse, error)
	ListExtents(*ListExtentsRequest, ExtentIndex_ListExtentsServer) error
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
	mustEmbedUnimplementedExtentIndexServer()
}

// UnimplementedExtentIndexServer must be embedded for forward
// compatible implementations.
type UnimplementedExtentIndexServer struct{}

func (UnimplementedExtentIndexServer) InsertExtent(context.Context, *InsertExtentRequest) (*InsertExtentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InsertExtent not implemented")
}
func (UnimplementedExtentIndexServer) RemoveExtent(context.Context, *RemoveExtentRequest) (*RemoveExtentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveExtent not implemented")
}
func (UnimplementedExtentIndexServer) LookupBlock(context.Context, *LookupBlockRequest) (*LookupBlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LookupBlock not implemented")
}
func (UnimplementedExtentIndexServer) NextMapped(context.Context, *NextMappedRequest) (*NextMappedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NextMapped not implemented")
}
func (UnimplementedExtentIndexServer) ListExtents(*ListExtentsRequest, ExtentIndex_ListExtentsServer) error {
	return status.Errorf(codes.Unimplemented, "method ListExtents not implemented")
}
func (UnimplementedExtentIndexServer) Stats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stats not implemented")
}
func (UnimplementedExtentIndexServer) mustEmbedUnimplementedExtentIndexServer() {}

// UnsafeExtentIndexServer may be embedded to opt out of forward
// compatibility. Adding methods to ExtentIndexServer will then break
// compilation.
type UnsafeExtentIndexServer interface {
	mustEmbedUnimplementedExtentIndexServer()
}

func RegisterExtentIndexServer(s grpc.ServiceRegistrar, srv ExtentIndexServer) {
	s.RegisterService(&ExtentIndex_ServiceDesc, srv)
}

func _ExtentIndex_InsertExtent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InsertExtentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtentIndexServer).InsertExtent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/extentindex.v1.ExtentIndex/InsertExtent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtentIndexServer).InsertExtent(ctx, req.(*InsertExtentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtentIndex_RemoveExtent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveExtentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtentIndexServer).RemoveExtent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/extentindex.v1.ExtentIndex/RemoveExtent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtentIndexServer).RemoveExtent(ctx, req.(*RemoveExtentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtentIndex_LookupBlock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LookupBlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtentIndexServer).LookupBlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/extentindex.v1.ExtentIndex/LookupBlock",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtentIndexServer).LookupBlock(ctx, req.(*LookupBlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtentIndex_NextMapped_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NextMappedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtentIndexServer).NextMapped(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/extentindex.v1.ExtentIndex/NextMapped",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtentIndexServer).NextMapped(ctx, req.(*NextMappedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtentIndex_ListExtents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListExtentsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ExtentIndexServer).ListExtents(m, &extentIndexListExtentsServer{stream})
}

type ExtentIndex_ListExtentsServer interface {
	Send(*Extent) error
	grpc.ServerStream
}

type extentIndexListExtentsServer struct {
	grpc.ServerStream
}

func (x *extentIndexListExtentsServer) Send(m *Extent) error {
	return x.ServerStream.SendMsg(m)
}

func _ExtentIndex_Stats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtentIndexServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/extentindex.v1.ExtentIndex/Stats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtentIndexServer).Stats(ctx, req.(*StatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtentIndex_ServiceDesc is the grpc.ServiceDesc for the ExtentIndex
// service. It is only intended for use with grpc.RegisterService.
var ExtentIndex_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extentindex.v1.ExtentIndex",
	HandlerType: (*ExtentIndexServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InsertExtent",
			Handler:    _ExtentIndex_InsertExtent_Handler,
		},
		{
			MethodName: "RemoveExtent",
			Handler:    _ExtentIndex_RemoveExtent_Handler,
		},
		{
			MethodName: "LookupBlock",
			Handler:    _ExtentIndex_LookupBlock_Handler,
		},
		{
			MethodName: "NextMapped",
			Handler:    _ExtentIndex_NextMapped_Handler,
		},
		{
			MethodName: "Stats",
			Handler:    _ExtentIndex_Stats_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListExtents",
			Handler:       _ExtentIndex_ListExtents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/extentindex.proto",
}
