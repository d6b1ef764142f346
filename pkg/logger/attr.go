package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Filename records the client-supplied file name under the key "filename".
func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}

// Path records a filesystem path under the key "path".
// If path is empty, it returns an empty Attr.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Size records a byte count under the key "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Dimensions groups image width and height under key.
func Dimensions(key string, width, height int) slog.Attr {
	return slog.Group(key, slog.Int("width", width), slog.Int("height", height))
}
