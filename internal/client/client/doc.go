// Package client is the CLI's gRPC adapter. It wraps the generated-style
// service clients from internal/proto and turns gRPC statuses back into the
// sentinel errors of internal/common.
package client
