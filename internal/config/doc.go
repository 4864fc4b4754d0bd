// Package config loads blocksel configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML file
//  3. BLOCKSEL_* environment variables
//
// Example file:
//
//	diagnostics = true
//
//	[log]
//	level = "debug"
//	prefix = "blocksel"
//
//	[document]
//	unit = "utf16"
//	validate = true
package config
