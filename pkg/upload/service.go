package upload

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/intake/pkg/async"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/sanitizer"
)

// Service validates uploaded buffers and persists them under a base directory.
// It holds no per-upload state and is safe for concurrent use. Blocking work
// (the final write and all image transcoding) runs on an async.Pool.
type Service struct {
	log         *slog.Logger
	pool        *async.Pool
	dirPerm     os.FileMode
	filePerm    os.FileMode
	jpegQuality int
	maxPixels   int64
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPool sets the pool that runs blocking work. Nil pools are ignored.
func WithPool(p *async.Pool) Option {
	return func(s *Service) {
		if p != nil {
			s.pool = p
		}
	}
}

// WithDirPerm sets permissions for created directories (default 0755).
func WithDirPerm(perm os.FileMode) Option {
	return func(s *Service) {
		s.dirPerm = perm
	}
}

// WithFilePerm sets permissions for written files (default 0644).
func WithFilePerm(perm os.FileMode) Option {
	return func(s *Service) {
		s.filePerm = perm
	}
}

// WithJPEGQuality sets JPEG output quality. Values outside 1..100 are ignored.
func WithJPEGQuality(q int) Option {
	return func(s *Service) {
		if q >= 1 && q <= 100 {
			s.jpegQuality = q
		}
	}
}

// WithMaxPixels caps width*height of decoded images (default DefaultMaxPixels).
// Non-positive values are ignored.
func WithMaxPixels(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPixels = n
		}
	}
}

// New creates a Service. Without WithPool it uses async.DefaultPool.
func New(opts ...Option) *Service {
	s := &Service{
		log:       slog.Default(),
		dirPerm:   0755,
		filePerm:  0644,
		maxPixels: DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = async.DefaultPool()
	}
	s.log = s.log.With(logger.Component("upload"))
	return s
}

// SaveFile validates data and writes it verbatim to baseDir + "/" + originalName.
//
// Checks run in this order and stop at the first failure: the extension must
// exist (ErrNoExtension) and be in allowedTypes, ignoring case
// (ErrDisallowedType); len(data) must not exceed maxSize (ErrTooLarge); baseDir
// is created with its parents (ErrDirectory). The name is not sanitized, see
// sanitizer.Name. An existing file with the same name is replaced.
//
// ctx only bounds the wait for a free worker. Once the write has started it
// runs to completion.
//
// Example:
//
//	path, err := svc.SaveFile(ctx, "/srv/content/docs", "report.pdf", data, []string{"pdf"}, 10<<20)
func (s *Service) SaveFile(ctx context.Context, baseDir, originalName string, data []byte, allowedTypes []string, maxSize int64) (string, error) {
	start := time.Now()
	path, err := s.saveFile(ctx, baseDir, originalName, data, allowedTypes, maxSize)
	s.logResult(ctx, "file saved", originalName, path, len(data), start, err)
	return path, err
}

func (s *Service) saveFile(ctx context.Context, baseDir, originalName string, data []byte, allowedTypes []string, maxSize int64) (string, error) {
	ext, err := Extension(originalName)
	if err != nil {
		return "", err
	}
	if err := validateType(ext, allowedTypes); err != nil {
		return "", err
	}
	if err := validateSize(len(data), maxSize); err != nil {
		return "", err
	}
	if err := ensureDir(baseDir, s.dirPerm); err != nil {
		return "", err
	}

	dst := baseDir + "/" + originalName
	return await(async.Submit(ctx, s.pool, data, func(_ context.Context, b []byte) (string, error) {
		if err := writeFile(dst, b, s.filePerm); err != nil {
			return "", err
		}
		return dst, nil
	}))
}

// SaveImage validates data as an image upload, resizes it according to
// NewResizePolicy(width, height), re-encodes it in the format named by the
// extension and writes it to baseDir + "/" + sanitizer.Name(originalName).
//
// Unlike SaveFile the size check comes first, and the allow-list is fixed to
// ImageTypes. The input format is detected from content, so a PNG payload
// named "photo.jpg" is stored as JPEG. Decoding fails with ErrInvalidFormat
// when the content is not a known image format and ErrDecode when it is
// malformed or its header declares more pixels than WithMaxPixels allows;
// encoding failures return ErrEncode.
//
// Example:
//
//	// shrink to at most 800px wide, keep aspect ratio
//	path, err := svc.SaveImage(ctx, "/srv/content/img", "Foto Estate.JPG", data, 5<<20, 800, 0)
func (s *Service) SaveImage(ctx context.Context, baseDir, originalName string, data []byte, maxSize int64, width, height int) (string, error) {
	start := time.Now()
	path, err := s.saveImage(ctx, baseDir, originalName, data, maxSize, width, height)
	s.logResult(ctx, "image saved", originalName, path, len(data), start, err,
		slog.Int("width", width), slog.Int("height", height))
	return path, err
}

func (s *Service) saveImage(ctx context.Context, baseDir, originalName string, data []byte, maxSize int64, width, height int) (string, error) {
	if err := validateSize(len(data), maxSize); err != nil {
		return "", err
	}
	ext, err := Extension(originalName)
	if err != nil {
		return "", err
	}
	if err := validateType(ext, ImageTypes); err != nil {
		return "", err
	}
	format, err := ParseFormat(ext)
	if err != nil {
		return "", err
	}
	if err := ensureDir(baseDir, s.dirPerm); err != nil {
		return "", err
	}

	dst := baseDir + "/" + sanitizer.Name(originalName)
	policy := NewResizePolicy(width, height)
	opts := EncodeOptions{JPEGQuality: s.jpegQuality}

	return await(async.Submit(ctx, s.pool, data, func(ctx context.Context, b []byte) (string, error) {
		img, detected, err := decodeImage(b, s.maxPixels)
		if err != nil {
			return "", err
		}

		src := img.Bounds()
		img = policy.Apply(img)
		out := img.Bounds()
		s.log.DebugContext(ctx, "image transcoded",
			slog.String("detected", detected),
			slog.String("format", format.String()),
			slog.String("policy", policy.Mode.String()),
			logger.Dimensions("source", src.Dx(), src.Dy()),
			logger.Dimensions("output", out.Dx(), out.Dy()),
		)

		var buf bytes.Buffer
		if err := format.Encode(&buf, img, opts); err != nil {
			return "", err
		}
		if err := writeFile(dst, buf.Bytes(), s.filePerm); err != nil {
			return "", err
		}
		return dst, nil
	}))
}

// await waits for f and maps failures of the offload itself to ErrWorkerFailure.
func await(f *async.Future[string]) (string, error) {
	path, err := f.Await()
	if err == nil {
		return path, nil
	}
	if Kind(err) == "" {
		return "", fmt.Errorf("%w: %w", ErrWorkerFailure, err)
	}
	return "", err
}

func (s *Service) logResult(ctx context.Context, msg, name, path string, size int, start time.Time, err error, attrs ...slog.Attr) {
	attrs = append(attrs,
		logger.Filename(name),
		logger.Size(size),
		logger.Duration(time.Since(start)),
	)
	if err != nil {
		attrs = append(attrs, slog.String("kind", Kind(err)), logger.Error(err))
		s.log.LogAttrs(ctx, slog.LevelWarn, "upload rejected", attrs...)
		return
	}
	attrs = append(attrs, logger.Path(path))
	s.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
