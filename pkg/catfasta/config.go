// 18 Oct 2026

package catfasta

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/andrew-torda/catfasta/pkg/alnwrt"
)

// Config holds defaults from a toml file. Anything given on the command
// line wins over the file.
//
//	filler = "N"
//	delim = "|"
//	wrap = 60
//	format = "nexus"
//	suffix = ".fas"
//	partition = true
//	quiet = false
type Config struct {
	Filler    string `toml:"filler"`
	Delim     string `toml:"delim"`
	Wrap      int    `toml:"wrap"`
	Format    string `toml:"format"`
	Suffix    string `toml:"suffix"`
	Partition bool   `toml:"partition"`
	Quiet     bool   `toml:"quiet"`
}

// LoadConfig reads a config file. With no name, we get an empty config.
// A name that cannot be read is an error.
func LoadConfig(fname string) (*Config, error) {
	var c Config
	if fname == "" {
		return &c, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config file %s: %w", fname, err)
	}
	if c.Format != "" {
		if _, err := alnwrt.ParseFormat(c.Format); err != nil {
			return nil, fmt.Errorf("config file %s: %w", fname, err)
		}
	}
	return &c, nil
}

// apply copies config values into flags which were not set on the
// command line. Set holds the names of flags that were.
func (c *Config) apply(flags *CmdFlag) {
	set := func(name string) bool { return flags.Set[name] }
	if c.Filler != "" && !set("m") {
		flags.Filler = c.Filler
	}
	if c.Delim != "" && !set("delim") {
		flags.Delim = c.Delim
	}
	if c.Wrap != 0 && !set("w") && !set("W") {
		flags.Wrap = c.Wrap
	}
	if c.Suffix != "" && !set("s") {
		flags.Suffix = c.Suffix
	}
	if c.Partition && !set("q") {
		flags.Part = true
	}
	if c.Quiet && !set("Q") {
		flags.Quiet = true
	}
	if c.Format != "" && len(flags.Formats) == 0 {
		f, _ := alnwrt.ParseFormat(c.Format) // checked on loading
		flags.Formats = []alnwrt.OutputFormat{f}
	}
}
