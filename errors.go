package legalease

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for media types outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrNoContent is returned when extraction yields only whitespace.
var ErrNoContent = errors.New("no text content found in document")

// ExtractionError wraps a failure inside a parsing or OCR engine. It is the
// fatal tier: the caller gets it back and can offer a retry; AI-stage
// failures never surface this way.
type ExtractionError struct {
	MediaType MediaType
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.MediaType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
