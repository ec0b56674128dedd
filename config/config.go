// Package config holds the two configuration layers this engine loads at
// start-up: process-wide flags (ProcessConfig) and named search-mode
// presets (SearchProfile). ProcessConfig follows config/config.go's
// namsral/flag idiom verbatim; SearchProfile adds a YAML-backed preset
// loader via spf13/viper for the search-tuning knobs that don't belong on
// the command line.
package config

import "github.com/namsral/flag"

// ProcessConfig is the process-wide configuration, loaded once from flags
// and/or environment variables (namsral/flag reads both).
type ProcessConfig struct {
	Threads               int
	MaxHeight             int
	ApplyFastSearchDepth  int
	RotationSystem        string
	LogLevel              string
}

// Load parses args (typically os.Args[1:]) into c.
func (c *ProcessConfig) Load(args []string) error {
	fs := flag.NewFlagSet("pcsolve", flag.ContinueOnError)
	fs.IntVar(&c.Threads, "threads", 0, "worker count; 0 picks runtime.NumCPU()-1")
	fs.IntVar(&c.MaxHeight, "max-height", 10, "tallest clear height the driver will step up to")
	fs.IntVar(&c.ApplyFastSearchDepth, "apply-fast-search-depth", 0, "depth below which the fast-search pruning heuristic applies")
	fs.StringVar(&c.RotationSystem, "rotation-system", "srs", "rotation system: srs or srs+")
	fs.StringVar(&c.LogLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	return fs.Parse(args)
}
