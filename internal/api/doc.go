// Package api declares the todokeeper gRPC contract shared by the server and
// the CLI client: message types, the TodoService descriptor and a JSON wire
// codec. Messages are plain Go structs carried as JSON inside gRPC frames,
// so no generated code is needed.
package api
