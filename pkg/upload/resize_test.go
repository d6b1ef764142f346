package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/intake/pkg/upload"
)

func TestNewResizePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		want          upload.ResizePolicy
	}{
		{"width only", 500, 0, upload.ResizePolicy{Mode: upload.ScaleToWidth, Width: 500}},
		{"height only", 0, 400, upload.ResizePolicy{Mode: upload.ScaleToHeight, Height: 400}},
		{"both", 300, 200, upload.ResizePolicy{Mode: upload.ForceExact, Width: 300, Height: 200}},
		{"both zero", 0, 0, upload.ResizePolicy{Mode: upload.NoResize}},
		{"negative width", -1, 0, upload.ResizePolicy{Mode: upload.NoResize}},
		{"negative height", 0, -5, upload.ResizePolicy{Mode: upload.NoResize}},
		{"positive and negative", 300, -5, upload.ResizePolicy{Mode: upload.NoResize}},
		{"negative and positive", -300, 5, upload.ResizePolicy{Mode: upload.NoResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, upload.NewResizePolicy(tt.width, tt.height))
		})
	}
}

func TestResizePolicy_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		ow, oh        int
		wantW, wantH  int
		wantResize    bool
	}{
		{"scale down to width", 500, 0, 1000, 500, 500, 250, true},
		{"width larger than original", 2000, 0, 1000, 500, 1000, 500, false},
		{"width equal to original", 1000, 0, 1000, 500, 1000, 500, false},
		{"width rounds height", 300, 0, 1000, 333, 300, 100, true},
		{"rounds to nearest", 3, 0, 4, 3, 3, 2, true},
		{"rounds half away from zero", 2, 0, 4, 5, 2, 3, true},
		{"height never below one", 10, 0, 1000, 1, 10, 1, true},
		{"scale down to height", 0, 250, 1000, 500, 500, 250, true},
		{"height larger than original", 0, 800, 1000, 500, 1000, 500, false},
		{"force exact shrink", 300, 300, 1000, 500, 300, 300, true},
		{"force exact enlarge", 300, 300, 10, 20, 300, 300, true},
		{"no resize", 0, 0, 1000, 500, 1000, 500, false},
		{"negative", -1, -1, 1000, 500, 1000, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h, resize := upload.NewResizePolicy(tt.width, tt.height).Dimensions(tt.ow, tt.oh)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantResize, resize)
		})
	}
}

func TestResizePolicy_Apply(t *testing.T) {
	t.Parallel()

	src := gradient(1000, 500)

	t.Run("proportional", func(t *testing.T) {
		t.Parallel()
		out := upload.NewResizePolicy(500, 0).Apply(src)
		assert.Equal(t, 500, out.Bounds().Dx())
		assert.Equal(t, 250, out.Bounds().Dy())
	})

	t.Run("no upscale", func(t *testing.T) {
		t.Parallel()
		out := upload.NewResizePolicy(2000, 0).Apply(src)
		assert.Same(t, src, out)
	})

	t.Run("forced exact", func(t *testing.T) {
		t.Parallel()
		out := upload.NewResizePolicy(300, 300).Apply(src)
		assert.Equal(t, 300, out.Bounds().Dx())
		assert.Equal(t, 300, out.Bounds().Dy())
	})

	t.Run("pass through", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, src, upload.NewResizePolicy(0, 0).Apply(src))
	})
}

func TestResizeMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no_resize", upload.NoResize.String())
	assert.Equal(t, "scale_to_width", upload.ScaleToWidth.String())
	assert.Equal(t, "scale_to_height", upload.ScaleToHeight.String())
	assert.Equal(t, "force_exact", upload.ForceExact.String())
}
