// Package colorconv provides embedded assets for the colorconv tool.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML], which the command seeds into the data directory on
// first run.
package colorconv

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
