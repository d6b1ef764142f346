package upload

import (
	"fmt"

	"github.com/dmitrymomot/intake/pkg/async"
)

// Config is the upload policy read from the environment by config.Load.
type Config struct {
	BaseDir      string   `env:"UPLOAD_BASE_DIR" envDefault:"./content"`
	MaxSize      int64    `env:"UPLOAD_MAX_SIZE" envDefault:"10485760"` // 10 MiB
	AllowedTypes []string `env:"UPLOAD_ALLOWED_TYPES" envSeparator:"," envDefault:"pdf,txt,csv,zip,png,jpg,jpeg,gif"`

	ImageMaxSize   int64 `env:"UPLOAD_IMAGE_MAX_SIZE" envDefault:"5242880"` // 5 MiB
	ImageMaxPixels int64 `env:"UPLOAD_IMAGE_MAX_PIXELS" envDefault:"50000000"`
	ImageWidth     int   `env:"UPLOAD_IMAGE_WIDTH" envDefault:"0"`
	ImageHeight    int   `env:"UPLOAD_IMAGE_HEIGHT" envDefault:"0"`
	JPEGQuality    int   `env:"UPLOAD_JPEG_QUALITY" envDefault:"75"`

	// Workers caps concurrent writes and transcodes. Zero means GOMAXPROCS.
	Workers int `env:"UPLOAD_WORKERS" envDefault:"0"`
}

// NewFromConfig builds a Service from cfg. Options are applied after the
// config-derived ones and take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	pool := async.DefaultPool()
	if cfg.Workers != 0 {
		p, err := async.NewPool(cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("upload workers: %w", err)
		}
		pool = p
	}

	base := []Option{
		WithPool(pool),
		WithJPEGQuality(cfg.JPEGQuality),
		WithMaxPixels(cfg.ImageMaxPixels),
	}
	return New(append(base, opts...)...), nil
}
