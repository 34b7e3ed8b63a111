// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by MODARFLOR_* environment variables and
// validated section by section before the application wires its dependencies.
package config
