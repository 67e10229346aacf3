// Package movie reads and rewrites the movie header of QuickTime files in place.
package movie

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-mvhd/internal/atom"
)

// Common errors
var (
	ErrNotFound = fmt.Errorf("movie header not found: %w", atom.ErrNotFound)
	ErrClosed   = errors.New("file is closed")
	ErrReadOnly = errors.New("file is not writable")
)
