// Package config handles configuration loading, parsing, and validation
// from flags, environment variables and an optional config file. It keeps
// the data directory, log level and credential settings out of the
// packages that use them.
package config
