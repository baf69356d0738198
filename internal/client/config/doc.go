// Package config loads runtime configuration for the hexplay CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. HPLAY_CLIENT_* environment variables, after an optional .env file.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the server gRPC endpoint
//	-t duration   per-request timeout
//	-o string     output format: text or json
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "output_format": "json"
//	}
//
// Everything on the command line that is not one of these flags is left for
// the command dispatcher; see Args.
package config
