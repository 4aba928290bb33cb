package imagepkg

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	MinQRSize     = 64
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

// QRPNG returns a PNG QR code for text, clamping size to [MinQRSize, MaxQRSize].
func QRPNG(text string, size int) ([]byte, error) {
	size = max(MinQRSize, min(MaxQRSize, size))
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: qr: %v", ErrEncoding, err)
	}
	return b, nil
}
