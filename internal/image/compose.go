package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	MaxSurfaceSide   = 65535
	MaxSurfacePixels = 1 << 28
)

// Result is an encoded concatenation.
type Result struct {
	Data        []byte
	Width       int
	Height      int
	Tier        Tier
	ContentType string
}

// Empty reports whether r is the no-op result of an empty request.
func (r Result) Empty() bool {
	return len(r.Data) == 0
}

// Composite draws placements onto a white totalWidth x targetHeight canvas in
// order and encodes it as JPEG at the tier's quality.
func Composite(placements []Placement, totalWidth, targetHeight int, tier Tier) (Result, error) {
	canvas, err := newSurface(totalWidth, targetHeight)
	if err != nil {
		return Result{}, err
	}

	for _, p := range placements {
		if p.Width <= 0 || p.Height <= 0 {
			continue
		}
		scaled := imaging.Resize(p.Raster, p.Width, p.Height, imaging.Lanczos)
		r := image.Rect(p.X, 0, p.X+p.Width, p.Height)
		draw.Draw(canvas, r, scaled, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(tier.Quality())); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return Result{
		Data:        buf.Bytes(),
		Width:       totalWidth,
		Height:      targetHeight,
		Tier:        tier,
		ContentType: "image/jpeg",
	}, nil
}

func newSurface(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || width > MaxSurfaceSide || height > MaxSurfaceSide ||
		int64(width)*int64(height) > MaxSurfacePixels {
		return nil, &SurfaceError{Width: width, Height: height}
	}
	return imaging.New(width, height, color.White), nil
}
