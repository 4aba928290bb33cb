package imagepkg_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// memFetcher serves encoded images from memory and counts fetches per locator.
type memFetcher struct {
	mu    sync.Mutex
	files map[string][]byte
	calls map[string]int
}

func newMemFetcher() *memFetcher {
	return &memFetcher{files: map[string][]byte{}, calls: map[string]int{}}
}

func (m *memFetcher) Fetch(_ context.Context, locator string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[locator]++
	b, ok := m.files[locator]
	if !ok {
		return nil, fmt.Errorf("%s: not found", locator)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memFetcher) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func noise(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 0xff
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
