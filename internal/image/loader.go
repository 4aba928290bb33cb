package imagepkg

import (
	"context"
	"errors"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/errgroup"
)

var errEmptyImage = errors.New("decoded image is empty")

// Loader fetches and decodes a batch of locators.
type Loader struct {
	Fetcher Fetcher
}

// LoadAll decodes every locator concurrently and returns the rasters in input order.
// Repeated locators are fetched and decoded once per occurrence. The first failure
// cancels the remaining fetches and is returned as a *LoadError at once; loads still
// in flight finish in the background and their results are dropped.
func (l *Loader) LoadAll(ctx context.Context, locators []string) ([]image.Image, error) {
	type loaded struct {
		index int
		img   image.Image
		err   error
	}
	// buffered so late loads never block after the caller has gone
	results := make(chan loaded, len(locators))
	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range locators {
		g.Go(func() error {
			img, err := l.load(gctx, loc)
			if err != nil {
				err = &LoadError{Index: i, Locator: loc, Err: err}
			}
			results <- loaded{index: i, img: img, err: err}
			return err
		})
	}

	rasters := make([]image.Image, len(locators))
	for range locators {
		select {
		case r := <-results:
			if r.err != nil {
				return nil, r.err
			}
			rasters[r.index] = r.img
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	// every load has reported, so this only releases the group's context
	_ = g.Wait()
	return rasters, nil
}

func (l *Loader) load(ctx context.Context, locator string) (image.Image, error) {
	rc, err := l.Fetcher.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, errEmptyImage
	}
	return img, nil
}
