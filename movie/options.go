package movie

import (
	"io"
	"log"
)

// Default window sizes. The head window matches the 2 KiB most encoders need
// for a fast-start moov; the tail window covers a moov written after mdat.
const (
	DefaultHeadWindow = 2048
	DefaultTailWindow = 64 * 1024
)

// Option configures how the movie header is searched for.
type Option func(*options)

type options struct {
	headWindow int
	tailWindow int
	logger     *log.Logger
}

func defaultOptions() *options {
	return &options{
		headWindow: DefaultHeadWindow,
		tailWindow: DefaultTailWindow,
		logger:     log.New(io.Discard, "", 0),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHeadWindow sets how many bytes are searched at the start of the file.
func WithHeadWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.headWindow = n
		}
	}
}

// WithTailWindow sets how many bytes are searched at the end of the file
// when the head window has no movie header.
func WithTailWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tailWindow = n
		}
	}
}

// WithLogger reports window fallbacks and re-reads to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
