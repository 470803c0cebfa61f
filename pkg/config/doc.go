// Package config loads the fixture configuration and settings files.
//
// Configuration is layered with koanf: embedded TOML defaults, then an
// optional TOML file named by GLINTFIX_CONFIG, then GLINTFIX_* environment
// variables. Settings files feed the settings fixture and may be TOML or YAML.
package config
