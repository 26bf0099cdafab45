package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	TotalSamples  int           // Total number of primary rays traced
	TilesRendered int           // Number of tiles completed
	Workers       int           // Number of parallel workers used
	Duration      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the primary ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
