// Package config provides configuration loading, merging, and validation
// facilities for the fundoo processes.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (and a local .env file)
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry point is [GetStructuredConfig]; each process validates the
// result for its own [Role].
package config
