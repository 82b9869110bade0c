// Package config handles loading and creating the loglens
// configuration file.
//
// # File format
//
// One TOML file, by default loglens.toml in the working directory:
//
//	highlight_full_line = false
//	reset_clears_search = true
//
//	[colors]
//	debug    = "green"
//	info     = "blue"
//	warning  = "yellow"
//	error    = "magenta"
//	critical = "red"
//
// # Behavior
//
// A missing file is not an error: Load writes one with the defaults
// above and then uses it, so the tool works out of the box and the
// user has a file to edit. A file that exists but cannot be parsed, or
// that lacks a color for any severity, or names a color outside the
// supported ANSI palette, is a fatal startup error — the viewer never
// runs with a partial configuration.
//
// The result is a plain Config value passed explicitly to the UI.
// There is no global configuration state.
package config
