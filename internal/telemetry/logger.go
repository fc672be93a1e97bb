// Package telemetry builds the logger and metrics shared by the server and the CLI.
package telemetry

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"redicore/envs"
)

// Builds the root logger from configuration. A nil output writes to stderr.
func NewLogger(config envs.Envs, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level := hclog.LevelFromString(config.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "redigo",
		Level:      level,
		Output:     output,
		JSONFormat: config.LogJson,
	})
}
