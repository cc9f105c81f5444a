package config

import (
	"os"
	"path"

	"github.com/openbehavior/fanout/logger"
)

// DefaultConfig returns configuration with simple defaults.
func DefaultConfig() Config {
	cwd, _ := os.Getwd()

	return Config{
		Sweep: Sweep{
			Token:     "{MODEL}",
			SubmitCmd: "sbatch --partition {PARTITION}",
			Partition: "shared",
		},
		Docker: Docker{
			Image:        "sro/analysis",
			DataDir:      path.Join(cwd, "Data"),
			OutputDir:    path.Join(cwd, "Output"),
			RemoveOnExit: true,
		},
		Logger: logger.DefaultConfig(),
	}
}
