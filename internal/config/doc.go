// Package config defines the application configuration structure and the
// loading logic that merges config files and environment variables.
package config
