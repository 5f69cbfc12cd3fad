// Package config loads dotbuilder's tool configuration.
//
// The configuration is a TOML file, by default at
// $XDG_CONFIG_HOME/dotbuilder/config.toml (falling back to
// ~/.config/dotbuilder/config.toml). A missing file is not an error; the
// defaults from [Default] apply.
//
//	open = true
//	output_dir = "graphs"
//	non_directional = false
//	duplicates_equal = true
//
//	[renderer]
//	engine = "dot"
//	format = "svg"
//	in_process = false
//
// Command-line flags take precedence over file values.
package config
