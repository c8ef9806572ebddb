// Package paths centralizes the file names used in the colorconv data
// directory.
package paths

import "path/filepath"

// Data directory file names.
const (
	ConfigFile = "config.toml"
	LogFile    = "colorconv.log"
)

// DataDirRel is the default data directory, relative to $HOME.
const DataDirRel = ".colorconv"

// DataDir provides path construction methods rooted at a data directory.
type DataDir struct {
	Root string
}

// Config returns the full path to the config file.
func (d DataDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d DataDir) Log() string { return filepath.Join(d.Root, LogFile) }
