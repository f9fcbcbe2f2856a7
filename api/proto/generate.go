// Package proto holds the agrorent.v1 API definitions. The Go bindings live in
// api/gen/v1.
package proto

//go:generate protoc -I . --go_out=../.. --go_opt=module=agrorent-backend --go-grpc_out=../.. --go-grpc_opt=module=agrorent-backend agrorent/v1/booking.proto agrorent/v1/reputation.proto agrorent/v1/account.proto
