// Package proto holds the generated hexplay gRPC messages and service stubs.
// Sources live under hexplay/.
package proto

//go:generate protoc -I . --go_out=../.. --go_opt=module=github.com/dmitrijs2005/hexplay --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/hexplay hexplay/user.proto hexplay/system.proto
