// Package config defines the run configuration of glacier-purge.
//
// A [Config] starts from [Default], is overlaid by an optional YAML file
// and then by GLACIER_PURGE_* environment variables (a .env file in the
// working directory is honored). Command-line flags are applied last by
// the CLI.
package config
