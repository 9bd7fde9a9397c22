// Package config loads gazetteer's TOML configuration file.
package config
