// Package upload validates uploaded byte buffers and stores them on the local
// filesystem, transcoding images on the way.
//
// # Architecture
//
// A Service exposes two entry points:
//   - SaveFile checks extension and size against a caller-supplied policy and
//     writes the bytes verbatim under the client's original name.
//   - SaveImage checks size and extension against ImageTypes, decodes the
//     payload, applies a ResizePolicy, re-encodes it as PNG, JPEG or GIF
//     according to the extension and writes it under a slug of the name
//     (see sanitizer.Name).
//
// Validation and directory creation run on the caller's goroutine. Decoding,
// resizing, encoding and the write itself are submitted to an async.Pool, which
// bounds how many run at once. Every file is written to a
// temporary name and renamed into place: a destination path only ever holds a
// complete file. Concurrent uploads to the same path are not coordinated and
// the last rename wins.
//
// # Usage
//
//	svc := upload.New(upload.WithLogger(log))
//
//	path, err := svc.SaveFile(ctx, "/srv/content/docs", fh.Filename, data,
//		[]string{"pdf", "txt"}, 10<<20)
//
//	// at most 800px wide, aspect ratio kept
//	path, err = svc.SaveImage(ctx, "/srv/content/img", fh.Filename, data, 5<<20, 800, 0)
//
// Resize rules, from the requested width and height:
//
//	width > 0, height == 0  shrink to width if wider, height = round(oh*width/ow)
//	width == 0, height > 0  shrink to height if taller
//	width > 0, height > 0   exactly width x height, aspect ratio ignored
//	otherwise               unchanged
//
// # Error Handling
//
// Every failure wraps one of the package's sentinel errors and carries the
// offending value in its message:
//
//	path, err := svc.SaveImage(ctx, dir, name, data, max, 800, 0)
//	switch {
//	case errors.Is(err, upload.ErrTooLarge), errors.Is(err, upload.ErrDisallowedType):
//		// reject with 4xx
//	case errors.Is(err, upload.ErrInvalidFormat), errors.Is(err, upload.ErrDecode):
//		// not an image
//	}
//
// Kind maps an error to a stable name ("TooLarge", "DecodeError", …) for logs
// and API responses. Nothing is retried internally, and directories created by
// a call that later fails are left in place.
package upload
