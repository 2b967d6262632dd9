package tool

import "flag"

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log              string
	UseConfigPath    string
	UsePort          int
	UseUploadDir     string
	UseStagingDir    string
	UseMaxIdleSweep  int // minutes; 0 keeps stale sessions forever
	UseSweepInterval int // minutes
}

// SetFlags parses CLI flags and returns the override config.
func SetFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.IntVar(&cfg.UsePort, "usePort", 0, "override listen port")
	flag.StringVar(&cfg.UseUploadDir, "useUploadDir", "", "override finalized upload directory")
	flag.StringVar(&cfg.UseStagingDir, "useStagingDir", "", "override chunk staging directory")
	flag.IntVar(&cfg.UseMaxIdleSweep, "useMaxIdleSweep", 0, "evict sessions idle longer than this many minutes (0 = never)")
	flag.IntVar(&cfg.UseSweepInterval, "useSweepInterval", 0, "minutes between sweeps of stale sessions")
	flag.Parse()
	return cfg
}
