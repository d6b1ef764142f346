package upload

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/draw"
)

// Format is the output encoding chosen from a validated extension.
type Format int

const (
	FormatPNG Format = iota + 1
	FormatJPEG
	FormatGIF
)

// ParseFormat maps a lower-case extension to its output format.
func ParseFormat(ext string) (Format, error) {
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// EncodeOptions tunes the format encoders.
type EncodeOptions struct {
	// JPEGQuality ranges from 1 to 100. Zero uses jpeg.DefaultQuality.
	JPEGQuality int
}

// Encode writes img to w:
//   - PNG with 8-bit non-premultiplied RGBA pixels;
//   - JPEG with 8-bit RGB pixels, alpha discarded rather than composited;
//   - GIF as a single frame built from 8-bit RGBA pixels, quantized with the
//     encoder's default palette.
func (f Format) Encode(w io.Writer, img image.Image, opts EncodeOptions) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, toNRGBA(img))
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 {
			quality = jpeg.DefaultQuality
		}
		err = jpeg.Encode(w, dropAlpha(img), &jpeg.Options{Quality: quality})
	case FormatGIF:
		err = gif.Encode(w, toRGBA(img), nil)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, f, err)
	}
	return nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

func toRGBA(img image.Image) *image.RGBA {
	if r, ok := img.(*image.RGBA); ok {
		return r
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// dropAlpha returns an opaque copy of img with every alpha sample set to 255.
// Non-premultiplied sources keep their stored color values.
func dropAlpha(img image.Image) *image.NRGBA {
	var dst *image.NRGBA
	if n, ok := img.(*image.NRGBA); ok {
		dst = &image.NRGBA{Pix: slices.Clone(n.Pix), Stride: n.Stride, Rect: n.Rect}
	} else {
		b := img.Bounds()
		dst = image.NewNRGBA(b)
		draw.Draw(dst, b, img, b.Min, draw.Src)
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
