package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrImageDecode indicates the image could not be read or decoded.
	ErrImageDecode = errors.New("palette: image decode failed")

	// ErrImageEmpty indicates a zero-area image or a short pixel buffer.
	ErrImageEmpty = errors.New("palette: image is empty")

	// ErrNoBuckets indicates no sampled pixel was opaque enough to count.
	ErrNoBuckets = errors.New("palette: no populated color buckets")

	// ErrConfigRead indicates the stored palette could not be read.
	ErrConfigRead = errors.New("palette: config read failed")

	// ErrConfigWrite indicates the palette could not be persisted.
	ErrConfigWrite = errors.New("palette: config write failed")

	// ErrMalformedLine marks a config line that was skipped.
	ErrMalformedLine = errors.New("palette: malformed config line")
)

// SourceError records why one fallback tier was passed over.
type SourceError struct {
	Tier Tier
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s tier: %v", e.Tier, e.Err)
	}
	return fmt.Sprintf("%s tier (%s): %v", e.Tier, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
