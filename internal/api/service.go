package api

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "todokeeper.TodoService"

// Full method names, as seen by interceptors in grpc.UnaryServerInfo.
const (
	TodoService_Ping_FullMethodName       = "/" + ServiceName + "/Ping"
	TodoService_Signup_FullMethodName     = "/" + ServiceName + "/Signup"
	TodoService_Signin_FullMethodName     = "/" + ServiceName + "/Signin"
	TodoService_ListTodos_FullMethodName  = "/" + ServiceName + "/ListTodos"
	TodoService_GetTodo_FullMethodName    = "/" + ServiceName + "/GetTodo"
	TodoService_CreateTodo_FullMethodName = "/" + ServiceName + "/CreateTodo"
	TodoService_UpdateTodo_FullMethodName = "/" + ServiceName + "/UpdateTodo"
	TodoService_DeleteTodo_FullMethodName = "/" + ServiceName + "/DeleteTodo"
	TodoService_ToggleTodo_FullMethodName = "/" + ServiceName + "/ToggleTodo"
)

// TodoServiceServer is the server API for TodoService.
type TodoServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Signin(context.Context, *SigninRequest) (*SigninResponse, error)
	ListTodos(context.Context, *ListTodosRequest) (*ListTodosResponse, error)
	GetTodo(context.Context, *TodoIDRequest) (*Todo, error)
	CreateTodo(context.Context, *CreateTodoRequest) (*Todo, error)
	UpdateTodo(context.Context, *UpdateTodoRequest) (*Todo, error)
	DeleteTodo(context.Context, *TodoIDRequest) (*DeleteTodoResponse, error)
	ToggleTodo(context.Context, *TodoIDRequest) (*Todo, error)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(TodoServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TodoServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TodoServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TodoService_ServiceDesc is the grpc.ServiceDesc for TodoService.
var TodoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TodoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(TodoService_Ping_FullMethodName, TodoServiceServer.Ping)},
		{MethodName: "Signup", Handler: unaryHandler(TodoService_Signup_FullMethodName, TodoServiceServer.Signup)},
		{MethodName: "Signin", Handler: unaryHandler(TodoService_Signin_FullMethodName, TodoServiceServer.Signin)},
		{MethodName: "ListTodos", Handler: unaryHandler(TodoService_ListTodos_FullMethodName, TodoServiceServer.ListTodos)},
		{MethodName: "GetTodo", Handler: unaryHandler(TodoService_GetTodo_FullMethodName, TodoServiceServer.GetTodo)},
		{MethodName: "CreateTodo", Handler: unaryHandler(TodoService_CreateTodo_FullMethodName, TodoServiceServer.CreateTodo)},
		{MethodName: "UpdateTodo", Handler: unaryHandler(TodoService_UpdateTodo_FullMethodName, TodoServiceServer.UpdateTodo)},
		{MethodName: "DeleteTodo", Handler: unaryHandler(TodoService_DeleteTodo_FullMethodName, TodoServiceServer.DeleteTodo)},
		{MethodName: "ToggleTodo", Handler: unaryHandler(TodoService_ToggleTodo_FullMethodName, TodoServiceServer.ToggleTodo)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todokeeper/todo_service",
}

// RegisterTodoServiceServer registers srv on s.
func RegisterTodoServiceServer(s grpc.ServiceRegistrar, srv TodoServiceServer) {
	s.RegisterService(&TodoService_ServiceDesc, srv)
}

// TodoServiceClient is the client API for TodoService.
type TodoServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	Signin(ctx context.Context, in *SigninRequest, opts ...grpc.CallOption) (*SigninResponse, error)
	ListTodos(ctx context.Context, in *ListTodosRequest, opts ...grpc.CallOption) (*ListTodosResponse, error)
	GetTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*Todo, error)
	CreateTodo(ctx context.Context, in *CreateTodoRequest, opts ...grpc.CallOption) (*Todo, error)
	UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*Todo, error)
	DeleteTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*DeleteTodoResponse, error)
	ToggleTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*Todo, error)
}

type todoServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTodoServiceClient returns a client that always speaks the JSON codec.
func NewTodoServiceClient(cc grpc.ClientConnInterface) TodoServiceClient {
	return &todoServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, TodoService_Ping_FullMethodName, in, opts)
}

func (c *todoServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, TodoService_Signup_FullMethodName, in, opts)
}

func (c *todoServiceClient) Signin(ctx context.Context, in *SigninRequest, opts ...grpc.CallOption) (*SigninResponse, error) {
	return invoke[SigninResponse](ctx, c.cc, TodoService_Signin_FullMethodName, in, opts)
}

func (c *todoServiceClient) ListTodos(ctx context.Context, in *ListTodosRequest, opts ...grpc.CallOption) (*ListTodosResponse, error) {
	return invoke[ListTodosResponse](ctx, c.cc, TodoService_ListTodos_FullMethodName, in, opts)
}

func (c *todoServiceClient) GetTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*Todo, error) {
	return invoke[Todo](ctx, c.cc, TodoService_GetTodo_FullMethodName, in, opts)
}

func (c *todoServiceClient) CreateTodo(ctx context.Context, in *CreateTodoRequest, opts ...grpc.CallOption) (*Todo, error) {
	return invoke[Todo](ctx, c.cc, TodoService_CreateTodo_FullMethodName, in, opts)
}

func (c *todoServiceClient) UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*Todo, error) {
	return invoke[Todo](ctx, c.cc, TodoService_UpdateTodo_FullMethodName, in, opts)
}

func (c *todoServiceClient) DeleteTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*DeleteTodoResponse, error) {
	return invoke[DeleteTodoResponse](ctx, c.cc, TodoService_DeleteTodo_FullMethodName, in, opts)
}

func (c *todoServiceClient) ToggleTodo(ctx context.Context, in *TodoIDRequest, opts ...grpc.CallOption) (*Todo, error) {
	return invoke[Todo](ctx, c.cc, TodoService_ToggleTodo_FullMethodName, in, opts)
}
