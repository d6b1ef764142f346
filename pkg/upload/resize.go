package upload

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeMode selects how an image is resized.
type ResizeMode int

const (
	// NoResize passes the decoded image through unchanged.
	NoResize ResizeMode = iota
	// ScaleToWidth shrinks images wider than Width, keeping the aspect ratio.
	ScaleToWidth
	// ScaleToHeight shrinks images taller than Height, keeping the aspect ratio.
	ScaleToHeight
	// ForceExact resizes to exactly Width x Height, ignoring the aspect ratio.
	ForceExact
)

func (m ResizeMode) String() string {
	switch m {
	case ScaleToWidth:
		return "scale_to_width"
	case ScaleToHeight:
		return "scale_to_height"
	case ForceExact:
		return "force_exact"
	default:
		return "no_resize"
	}
}

// ResizePolicy is the resize rule derived once from a requested width and height.
type ResizePolicy struct {
	Mode   ResizeMode
	Width  int
	Height int
}

// NewResizePolicy maps a requested (width, height) pair to a policy.
// Zero means "unconstrained" on that axis. Negative values, or both zero,
// select NoResize.
//
//	width > 0, height == 0  ScaleToWidth (only ever shrinks)
//	width == 0, height > 0  ScaleToHeight (only ever shrinks)
//	width > 0, height > 0   ForceExact (may enlarge or distort)
func NewResizePolicy(width, height int) ResizePolicy {
	switch {
	case width > 0 && height == 0:
		return ResizePolicy{Mode: ScaleToWidth, Width: width}
	case width == 0 && height > 0:
		return ResizePolicy{Mode: ScaleToHeight, Height: height}
	case width > 0 && height > 0:
		return ResizePolicy{Mode: ForceExact, Width: width, Height: height}
	default:
		return ResizePolicy{Mode: NoResize}
	}
}

// Dimensions returns the output size for an ow x oh source image and whether
// a resize is needed at all.
func (p ResizePolicy) Dimensions(ow, oh int) (width, height int, resize bool) {
	switch p.Mode {
	case ScaleToWidth:
		if ow > p.Width {
			return p.Width, scaled(oh, p.Width, ow), true
		}
	case ScaleToHeight:
		if oh > p.Height {
			return scaled(ow, p.Height, oh), p.Height, true
		}
	case ForceExact:
		return p.Width, p.Height, true
	}
	return ow, oh, false
}

// Apply resizes img according to the policy using a Lanczos filter.
// img is returned as is when no resize is needed.
func (p ResizePolicy) Apply(img image.Image) image.Image {
	b := img.Bounds()
	w, h, resize := p.Dimensions(b.Dx(), b.Dy())
	if !resize {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// scaled returns round(side * num / den), never less than 1.
func scaled(side, num, den int) int {
	v := int(math.Round(float64(side) * float64(num) / float64(den)))
	return max(v, 1)
}
