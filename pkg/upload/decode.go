package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultMaxPixels bounds the decoded size of an image (about 200 MiB of RGBA).
const DefaultMaxPixels = 50_000_000

// decodeImage decodes data, detecting the format from its content rather than
// from the file name. Only the first frame of an animated GIF is kept.
//
// The header is read first and images with more than maxPixels pixels are
// rejected with ErrDecode before any pixel buffer is allocated.
func decodeImage(data []byte, maxPixels int64) (image.Image, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", decodeError(err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > maxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d is %d pixels, maximum %d", ErrDecode, cfg.Width, cfg.Height, pixels, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", decodeError(err)
	}
	return img, format, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
