package imagepkg

import (
	"context"
	"log/slog"
	"time"
)

// Pipeline turns an ordered list of locators into one horizontal image.
// It keeps no state between calls.
type Pipeline struct {
	Loader *Loader
	Logger *slog.Logger
}

// NewPipeline returns a Pipeline fetching through f.
func NewPipeline(f Fetcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Loader: &Loader{Fetcher: f},
		Logger: logger,
	}
}

// Concatenate loads, scales and joins locators at targetHeight, using the tier
// TierFor picks for that height. An empty locator list returns an empty Result
// without doing any work.
func (p *Pipeline) Concatenate(ctx context.Context, locators []string, targetHeight int) (Result, error) {
	return p.ConcatenateTier(ctx, locators, targetHeight, TierFor(targetHeight))
}

// ConcatenateTier is Concatenate with an explicit encode tier.
func (p *Pipeline) ConcatenateTier(ctx context.Context, locators []string, targetHeight int, tier Tier) (Result, error) {
	if len(locators) == 0 {
		return Result{}, nil
	}
	if targetHeight <= 0 {
		return Result{}, ErrInvalidHeight
	}
	if targetHeight > MaxSurfaceSide {
		return Result{}, &SurfaceError{Height: targetHeight}
	}

	start := time.Now()
	rasters, err := p.Loader.LoadAll(ctx, locators)
	if err != nil {
		p.logger().Warn("concatenate", "stage", "load", "images", len(locators), "err", err)
		return Result{}, err
	}
	loaded := time.Since(start)

	placements, totalWidth := Plan(rasters, targetHeight)
	res, err := Composite(placements, totalWidth, targetHeight, tier)
	if err != nil {
		p.logger().Warn("concatenate", "stage", "composite", "width", totalWidth, "height", targetHeight, "err", err)
		return Result{}, err
	}

	p.logger().Debug("concatenate",
		"images", len(locators),
		"width", res.Width,
		"height", res.Height,
		"tier", tier.String(),
		"bytes", len(res.Data),
		"load", loaded,
		"total", time.Since(start))
	return res, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
