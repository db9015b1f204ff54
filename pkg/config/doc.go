// Package config loads catalogpromo configuration.
//
// Configuration is layered with koanf: embedded defaults, the user file
// under the XDG config directory, an explicit or working-directory file
// (TOML or YAML) and CATALOGPROMO_* environment variables. The loaded
// Config also acts as the discovery mechanism for tagged action services.
package config
