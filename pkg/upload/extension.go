package upload

import (
	"fmt"
	"slices"
	"strings"
)

// ImageTypes is the fixed allow-list for SaveImage.
var ImageTypes = []string{"png", "jpg", "jpeg", "gif"}

// Extension returns the lower-cased text after the final "." of the last path
// element of name.
// A name with no dot or only a single leading dot (".env") has no extension
// and yields ErrNoExtension. A trailing dot ("file.") yields an empty
// extension, which no allow-list accepts unless it lists "".
//
// Example:
//
//	ext, _ := upload.Extension("Report.Final.PDF") // "pdf"
func Extension(name string) (string, error) {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 || base == ".." {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}

	return strings.ToLower(base[i+1:]), nil
}

// validateType checks ext against allowed, ignoring case.
func validateType(ext string, allowed []string) error {
	if slices.ContainsFunc(allowed, func(t string) bool { return strings.EqualFold(t, ext) }) {
		return nil
	}
	return fmt.Errorf("%w: %s (allowed: %s)", ErrDisallowedType, ext, strings.Join(allowed, ", "))
}

// validateSize rejects buffers strictly larger than maxSize.
func validateSize(size int, maxSize int64) error {
	if int64(size) > maxSize {
		return fmt.Errorf("%w: %d bytes, maximum %d bytes", ErrTooLarge, size, maxSize)
	}
	return nil
}
