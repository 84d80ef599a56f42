package storagemodels

// StreamResult carries one decoded entity or an error. A decode error
// is per-item and the stream continues; a storage or validation error
// is terminal and the channel closes after it. The module performs no
// hidden retries, so retry policy stays with the caller.
type StreamResult[T any] struct {
	Item T
	// Token resumes the stream just after this item when passed back
	// via WithStartToken. Empty while the current page is unfinished.
	Token string
	Error error
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize int    // Channel buffer size (default: 100)
	PageSize   int32  // Items per storage page (default: 100)
	StartToken string // Continuation token to resume from
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
		PageSize:   100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithPageSize sets the storage page size
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

// WithStartToken resumes a stream from a previously observed token.
func WithStartToken(token string) StreamOption {
	return func(opts *StreamOptions) {
		opts.StartToken = token
	}
}
