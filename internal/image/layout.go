package imagepkg

import (
	"image"
	"math"
)

// Placement is one raster's slot in the output row.
type Placement struct {
	Index  int
	Raster image.Image
	Width  int
	Height int
	X      int
}

// Plan scales every raster to targetHeight, keeping its aspect ratio, and lays
// them out left to right without gaps. Widths are rounded per image, so the total
// may drift from the unrounded sum by up to half a pixel per image.
func Plan(rasters []image.Image, targetHeight int) ([]Placement, int) {
	if len(rasters) == 0 {
		return nil, 0
	}
	placements := make([]Placement, len(rasters))
	x := 0
	for i, r := range rasters {
		w := ScaledWidth(r.Bounds().Dx(), r.Bounds().Dy(), targetHeight)
		placements[i] = Placement{
			Index:  i,
			Raster: r,
			Width:  w,
			Height: targetHeight,
			X:      x,
		}
		x += w
	}
	return placements, x
}

// ScaledWidth returns round(targetHeight * width / height).
func ScaledWidth(width, height, targetHeight int) int {
	if height <= 0 {
		return 0
	}
	aspect := float64(width) / float64(height)
	return int(math.Round(float64(targetHeight) * aspect))
}
