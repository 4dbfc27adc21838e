// Package config provides configuration loading and validation for s3gate.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (S3GATE_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"s3gate.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with S3GATE_ prefix:
//   - server.port → S3GATE_SERVER_PORT
//   - store.endpoint → S3GATE_STORE_ENDPOINT
//   - store.bucket → S3GATE_STORE_BUCKET
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: bind host/port, optional URL prefix, worker cap
//   - Store: endpoint, region, optional default bucket, credentials
//   - CORS: cross-origin resource sharing settings
//   - Metrics: prometheus endpoint toggle and path
//   - Log: logging level
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Store endpoint and region are required
//   - URL prefix must be a single path segment (no slashes)
//   - Metrics path must start with a slash
//   - Log level must be debug, info, warn, or error
package config
