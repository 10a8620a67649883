// Package config assembles the application configuration from three sources
// merged in priority order: environment variables, command-line flags, and
// an optional JSON file. Earlier sources win; the JSON file only fills in
// values left empty by the environment and flags, and built-in defaults
// backfill whatever remains unset.
package config
