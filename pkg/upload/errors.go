package upload

import "errors"

var (
	// Validation errors, returned before anything touches the filesystem.
	ErrNoExtension    = errors.New("file has no extension")
	ErrDisallowedType = errors.New("file type is not allowed")
	ErrTooLarge       = errors.New("file size exceeds maximum allowed size")

	// Filesystem errors
	ErrDirectory = errors.New("failed to create directory")
	ErrWrite     = errors.New("failed to write file")

	// Image pipeline errors
	ErrInvalidFormat     = errors.New("unrecognized image format")
	ErrDecode            = errors.New("failed to decode image")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEncode            = errors.New("failed to encode image")

	// ErrWorkerFailure means the offloaded task did not produce a result:
	// it panicked or never started because the context was done while queued.
	ErrWorkerFailure = errors.New("upload worker failed")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrNoExtension, "NoExtension"},
	{ErrDisallowedType, "DisallowedType"},
	{ErrTooLarge, "TooLarge"},
	{ErrDirectory, "DirectoryError"},
	{ErrWrite, "WriteError"},
	{ErrInvalidFormat, "InvalidFormat"},
	{ErrDecode, "DecodeError"},
	{ErrUnsupportedFormat, "UnsupportedFormat"},
	{ErrEncode, "EncodeError"},
	{ErrWorkerFailure, "WorkerFailure"},
}

// Kind returns a stable name for the upload error kind wrapped by err,
// suitable for log fields and API error codes. Returns "" for nil and
// for errors that do not come from this package.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
