// config.go loads engine configuration from a TOML file: transposition
// table size, analyse-mode logging, and default search limits.

package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a Searcher is constructed with. The zero
// value gives a defaultTableSizeMB transposition table, no analyse-mode
// logging, and no default depth/time limits. DefaultDepth and
// DefaultMoveTimeMS are decoded and kept here, but the Searcher does
// not read them: SearchDepth and SearchTimed each take an explicit
// limit.
type Config struct {
	TableSizeMB       int  `toml:"table_size_mb"`
	AnalyseMode       bool `toml:"analyse_mode"`
	DefaultDepth      int  `toml:"default_depth"`
	DefaultMoveTimeMS int  `toml:"default_move_time_ms"`
}

// defaultTableSizeMB is used when a Config leaves TableSizeMB unset.
const defaultTableSizeMB = 64

// LoadConfig reads and parses a TOML configuration file at path. Keys
// that match no Config field are reported as an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("engine: loading config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("engine: loading config %q: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// tableSizeMB returns the configured table size, or the default if the
// Config did not specify one.
func (c Config) tableSizeMB() int {
	if c.TableSizeMB <= 0 {
		return defaultTableSizeMB
	}
	return c.TableSizeMB
}
