package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/intake/pkg/async"
	"github.com/dmitrymomot/intake/pkg/config"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/upload"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Upload    upload.Config
}

type globalOptions struct {
	dir     string
	maxSize int64
	envFile string
}

type uploadIDKey struct{}

type app struct {
	cfg appConfig
	log *slog.Logger
	svc *upload.Service
}

func newApp(opts *globalOptions) (*app, error) {
	var loadOpts []config.Option
	if opts.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFiles(opts.envFile))
	}

	var cfg appConfig
	if err := config.Load(&cfg, loadOpts...); err != nil {
		return nil, err
	}
	if opts.dir != "" {
		cfg.Upload.BaseDir = opts.dir
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "intake"),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("upload_id", uploadIDKey{}),
	}
	if cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		logOpts = append(logOpts, logger.WithLevel(lvl))
	}
	if cfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(logOpts...)

	svc, err := upload.NewFromConfig(cfg.Upload, upload.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, svc: svc}, nil
}

// maxSizeOr returns the flag override if set, otherwise fallback.
func (opts *globalOptions) maxSizeOr(fallback int64) int64 {
	if opts.maxSize > 0 {
		return opts.maxSize
	}
	return fallback
}

type saveFunc func(ctx context.Context, name string, data []byte) (string, error)

// run saves every path concurrently and prints one line per file.
// It returns an error if any file failed.
func (a *app) run(ctx context.Context, out io.Writer, paths []string, name func(string) string, save saveFunc) error {
	futures := make([]*async.Future[string], len(paths))
	for i, p := range paths {
		ctx := context.WithValue(ctx, uploadIDKey{}, uuid.NewString())
		futures[i] = async.Async(ctx, p, func(ctx context.Context, p string) (string, error) {
			data, err := os.ReadFile(p)
			if err != nil {
				return "", err
			}
			return save(ctx, name(p), data)
		})
	}

	failed := 0
	for i, f := range futures {
		saved, err := f.Await()
		if err != nil {
			failed++
			if kind := upload.Kind(err); kind != "" {
				fmt.Fprintf(out, "FAIL %s [%s]: %v\n", paths[i], kind, err)
			} else {
				fmt.Fprintf(out, "FAIL %s: %v\n", paths[i], err)
			}
			continue
		}
		fmt.Fprintf(out, "OK   %s -> %s\n", paths[i], saved)
	}

	a.log.InfoContext(ctx, "intake finished",
		slog.Int("total", len(paths)),
		slog.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
