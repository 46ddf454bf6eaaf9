// Package config defines the application configuration structure and
// loading logic. Configuration is read from environment variables with the
// PASAKA_ prefix, with an optional config.yaml for local development.
package config
