package config

import (
	"flag"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScenario   = flag.String("scenario", "", "Path to scenario YAML")
	flagOut        = flag.String("out", "", "Path for the CSV trace")
	flagCharacters = flag.Int("characters", 0, "Number of simulated characters")
	flagDuration   = flag.Duration("duration", 0, "Simulated time to run")
	flagMethod     = flag.String("method", "", "Damping method: exact or exponential")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScenario != "" {
		cfg.Simulation.Scenario = *flagScenario
	}
	if *flagOut != "" {
		cfg.Simulation.Output = *flagOut
	}
	if *flagCharacters > 0 {
		cfg.Simulation.Characters = *flagCharacters
	}
	if *flagDuration > time.Duration(0) {
		cfg.Simulation.Duration = *flagDuration
	}
	if *flagMethod != "" {
		cfg.Damping.Method = *flagMethod
	}
}
