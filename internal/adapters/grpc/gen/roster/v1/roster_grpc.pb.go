// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: roster/v1/roster.proto

package rosterpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RosterService_AddEmployee_FullMethodName       = "/kintai.roster.v1.RosterService/AddEmployee"
	RosterService_RenameEmployee_FullMethodName    = "/kintai.roster.v1.RosterService/RenameEmployee"
	RosterService_SetEmployeeNumber_FullMethodName = "/kintai.roster.v1.RosterService/SetEmployeeNumber"
	RosterService_DeleteEmployee_FullMethodName    = "/kintai.roster.v1.RosterService/DeleteEmployee"
	RosterService_AddInfraction_FullMethodName     = "/kintai.roster.v1.RosterService/AddInfraction"
	RosterService_DeleteInfraction_FullMethodName  = "/kintai.roster.v1.RosterService/DeleteInfraction"
	RosterService_GetEmployee_FullMethodName       = "/kintai.roster.v1.RosterService/GetEmployee"
	RosterService_ListEmployees_FullMethodName     = "/kintai.roster.v1.RosterService/ListEmployees"
)

// RosterServiceClient is the client API for RosterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RosterServiceClient interface {
	AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error)
	RenameEmployee(ctx context.Context, in *RenameEmployeeRequest, opts ...grpc.CallOption) (*RenameEmployeeResponse, error)
	SetEmployeeNumber(ctx context.Context, in *SetEmployeeNumberRequest, opts ...grpc.CallOption) (*SetEmployeeNumberResponse, error)
	DeleteEmployee(ctx context.Context, in *DeleteEmployeeRequest, opts ...grpc.CallOption) (*DeleteEmployeeResponse, error)
	AddInfraction(ctx context.Context, in *AddInfractionRequest, opts ...grpc.CallOption) (*AddInfractionResponse, error)
	DeleteInfraction(ctx context.Context, in *DeleteInfractionRequest, opts ...grpc.CallOption) (*DeleteInfractionResponse, error)
	GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error)
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc}
}

func (c *rosterServiceClient) AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddEmployeeResponse)
	err := c.cc.Invoke(ctx, RosterService_AddEmployee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) RenameEmployee(ctx context.Context, in *RenameEmployeeRequest, opts ...grpc.CallOption) (*RenameEmployeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RenameEmployeeResponse)
	err := c.cc.Invoke(ctx, RosterService_RenameEmployee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SetEmployeeNumber(ctx context.Context, in *SetEmployeeNumberRequest, opts ...grpc.CallOption) (*SetEmployeeNumberResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetEmployeeNumberResponse)
	err := c.cc.Invoke(ctx, RosterService_SetEmployeeNumber_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) DeleteEmployee(ctx context.Context, in *DeleteEmployeeRequest, opts ...grpc.CallOption) (*DeleteEmployeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEmployeeResponse)
	err := c.cc.Invoke(ctx, RosterService_DeleteEmployee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) AddInfraction(ctx context.Context, in *AddInfractionRequest, opts ...grpc.CallOption) (*AddInfractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddInfractionResponse)
	err := c.cc.Invoke(ctx, RosterService_AddInfraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) DeleteInfraction(ctx context.Context, in *DeleteInfractionRequest, opts ...grpc.CallOption) (*DeleteInfractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteInfractionResponse)
	err := c.cc.Invoke(ctx, RosterService_DeleteInfraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEmployeeResponse)
	err := c.cc.Invoke(ctx, RosterService_GetEmployee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEmployeesResponse)
	err := c.cc.Invoke(ctx, RosterService_ListEmployees_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RosterServiceServer is the server API for RosterService service.
// All implementations must embed UnimplementedRosterServiceServer
// for forward compatibility.
type RosterServiceServer interface {
	AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error)
	RenameEmployee(context.Context, *RenameEmployeeRequest) (*RenameEmployeeResponse, error)
	SetEmployeeNumber(context.Context, *SetEmployeeNumberRequest) (*SetEmployeeNumberResponse, error)
	DeleteEmployee(context.Context, *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error)
	AddInfraction(context.Context, *AddInfractionRequest) (*AddInfractionResponse, error)
	DeleteInfraction(context.Context, *DeleteInfractionRequest) (*DeleteInfractionResponse, error)
	GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	mustEmbedUnimplementedRosterServiceServer()
}

// UnimplementedRosterServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRosterServiceServer struct{}

func (UnimplementedRosterServiceServer) AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddEmployee not implemented")
}
func (UnimplementedRosterServiceServer) RenameEmployee(context.Context, *RenameEmployeeRequest) (*RenameEmployeeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenameEmployee not implemented")
}
func (UnimplementedRosterServiceServer) SetEmployeeNumber(context.Context, *SetEmployeeNumberRequest) (*SetEmployeeNumberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetEmployeeNumber not implemented")
}
func (UnimplementedRosterServiceServer) DeleteEmployee(context.Context, *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEmployee not implemented")
}
func (UnimplementedRosterServiceServer) AddInfraction(context.Context, *AddInfractionRequest) (*AddInfractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddInfraction not implemented")
}
func (UnimplementedRosterServiceServer) DeleteInfraction(context.Context, *DeleteInfractionRequest) (*DeleteInfractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteInfraction not implemented")
}
func (UnimplementedRosterServiceServer) GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEmployee not implemented")
}
func (UnimplementedRosterServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEmployees not implemented")
}
func (UnimplementedRosterServiceServer) mustEmbedUnimplementedRosterServiceServer() {}
func (UnimplementedRosterServiceServer) testEmbeddedByValue()                       {}

// UnsafeRosterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RosterServiceServer will
// result in compilation errors.
type UnsafeRosterServiceServer interface {
	mustEmbedUnimplementedRosterServiceServer()
}

func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	// If the following call pancis, it indicates UnimplementedRosterServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RosterService_ServiceDesc, srv)
}

func _RosterService_AddEmployee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).AddEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_AddEmployee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).AddEmployee(ctx, req.(*AddEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_RenameEmployee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenameEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).RenameEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_RenameEmployee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).RenameEmployee(ctx, req.(*RenameEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SetEmployeeNumber_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetEmployeeNumberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SetEmployeeNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SetEmployeeNumber_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).SetEmployeeNumber(ctx, req.(*SetEmployeeNumberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_DeleteEmployee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).DeleteEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_DeleteEmployee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).DeleteEmployee(ctx, req.(*DeleteEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_AddInfraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddInfractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).AddInfraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_AddInfraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).AddInfraction(ctx, req.(*AddInfractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_DeleteInfraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInfractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).DeleteInfraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_DeleteInfraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).DeleteInfraction(ctx, req.(*DeleteInfractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_GetEmployee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GetEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GetEmployee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).GetEmployee(ctx, req.(*GetEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_ListEmployees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEmployeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).ListEmployees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_ListEmployees_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).ListEmployees(ctx, req.(*ListEmployeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RosterService_ServiceDesc is the grpc.ServiceDesc for RosterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RosterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "kintai.roster.v1.RosterService",
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddEmployee",
			Handler:    _RosterService_AddEmployee_Handler,
		},
		{
			MethodName: "RenameEmployee",
			Handler:    _RosterService_RenameEmployee_Handler,
		},
		{
			MethodName: "SetEmployeeNumber",
			Handler:    _RosterService_SetEmployeeNumber_Handler,
		},
		{
			MethodName: "DeleteEmployee",
			Handler:    _RosterService_DeleteEmployee_Handler,
		},
		{
			MethodName: "AddInfraction",
			Handler:    _RosterService_AddInfraction_Handler,
		},
		{
			MethodName: "DeleteInfraction",
			Handler:    _RosterService_DeleteInfraction_Handler,
		},
		{
			MethodName: "GetEmployee",
			Handler:    _RosterService_GetEmployee_Handler,
		},
		{
			MethodName: "ListEmployees",
			Handler:    _RosterService_ListEmployees_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "roster/v1/roster.proto",
}
