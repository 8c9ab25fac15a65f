// Package config provides the configuration for Veritas.
//
// Config is a flat struct populated from defaults, the optional .veritas
// YAML file, environment variables (optionally loaded from a .env file) and
// finally command line flags, in that order of increasing precedence.
package config
