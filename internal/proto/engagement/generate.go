// Package engagement holds the generated gRPC API of the engagement engine.
// Sources live in proto/engagement/v1.
package engagement

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/colegottdank/debateai-engagement --go-grpc_out=../../.. --go-grpc_opt=module=github.com/colegottdank/debateai-engagement engagement/v1/engagement.proto
