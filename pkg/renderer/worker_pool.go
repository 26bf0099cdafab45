package renderer

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// WorkerPool renders an image in parallel, one tile at a time per worker.
// Every tile is sampled with its own generator seeded from the base seed and
// the tile ID, so the output does not depend on the number of workers.
type WorkerPool struct {
	raytracer *Raytracer
	config    RenderConfig
	logger    core.Logger
	onTile    TileCallback
}

// TileCallback is invoked from the worker goroutines after a tile's pixels
// have been written. Calls may run concurrently.
type TileCallback func(tile Tile, fb *FrameBuffer)

// NewWorkerPool creates a worker pool. A nil logger discards output.
func NewWorkerPool(rt *Raytracer, config RenderConfig, logger core.Logger) *WorkerPool {
	if logger == nil {
		logger = nopLogger{}
	}
	config = config.Normalize()
	config.Width, config.Height = rt.width, rt.height

	return &WorkerPool{
		raytracer: rt,
		config:    config,
		logger:    logger,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.config.NumWorkers
}

// OnTileComplete registers a callback for finished tiles
func (wp *WorkerPool) OnTileComplete(cb TileCallback) {
	wp.onTile = cb
}

// Render fills a new frame buffer. Workers stop between tiles once ctx is
// cancelled, and Render then returns the context's error.
func (wp *WorkerPool) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	start := time.Now()
	cfg := wp.config
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)
	numWorkers := min(cfg.NumWorkers, len(tiles))

	wp.logger.Printf("Rendering %dx%d with %d samples per pixel (using %d workers)...\n",
		cfg.Width, cfg.Height, wp.raytracer.config.SamplesPerPixel, numWorkers)

	fb := NewFrameBuffer(cfg.Width, cfg.Height)
	var samples, tilesDone atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	queue := make(chan Tile)

	g.Go(func() error {
		defer close(queue)
		for _, tile := range tiles {
			select {
			case queue <- tile:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			random := rand.New(rand.NewSource(cfg.Seed))
			sampler := core.NewRandomSampler(random)

			for tile := range queue {
				if err := ctx.Err(); err != nil {
					return err
				}
				random.Seed(cfg.Seed + int64(tile.ID))
				samples.Add(int64(wp.raytracer.RenderBounds(tile.Bounds, fb, sampler)))
				tilesDone.Add(1)
				if wp.onTile != nil {
					wp.onTile(tile, fb)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:   cfg.Width * cfg.Height,
		TotalSamples:  int(samples.Load()),
		TilesRendered: int(tilesDone.Load()),
		Workers:       numWorkers,
		Duration:      time.Since(start),
	}
	wp.logger.Printf("Render complete: %d tiles, %d samples in %v (%.0f samples/s)\n",
		stats.TilesRendered, stats.TotalSamples, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())

	return fb, stats, nil
}
