// Package config resolves the search configuration from positional arguments,
// an optional YAML settings file, and environment variables with precedence:
// Environment variables > YAML config > Defaults. The resolved Config is
// immutable and is the only place the environment is consulted.
package config
