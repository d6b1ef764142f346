package async

import "errors"

var (
	ErrTimeout         = errors.New("async: operation timed out waiting for future completion")
	ErrTaskPanicked    = errors.New("async: task panicked")
	ErrInvalidPoolSize = errors.New("async: pool size must be positive")
)
