package legalease

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// MediaType identifies a supported document format. Dispatch is purely on
// the declared type; see DetectMediaType for callers without one.
type MediaType string

const (
	MediaTypePDF       MediaType = "application/pdf"
	MediaTypeWord      MediaType = "application/msword"
	MediaTypeWordXML   MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePlainText MediaType = "text/plain"
	MediaTypeJPEG      MediaType = "image/jpeg"
	MediaTypePNG       MediaType = "image/png"
	MediaTypeTIFF      MediaType = "image/tiff"
)

// Extractor converts an opaque document source into plain text.
type Extractor struct {
	ocr         OCR
	ocrLanguage string
	log         *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithOCR supplies the recognition capability used for image media types.
// Without one, image extraction fails with an *ExtractionError.
func WithOCR(ocr OCR) ExtractorOption {
	return func(e *Extractor) { e.ocr = ocr }
}

// WithOCRLanguage sets the recognition language hint (default "eng").
func WithOCRLanguage(lang string) ExtractorOption {
	return func(e *Extractor) { e.ocrLanguage = lang }
}

// WithExtractorLogger overrides the default logger.
func WithExtractorLogger(log *slog.Logger) ExtractorOption {
	return func(e *Extractor) { e.log = log }
}

// NewExtractor builds an extractor. OCR-backed media types additionally need
// WithOCR.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{ocrLanguage: "eng", log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract converts source into plain text based on the declared media type.
// For MediaTypePlainText, source is dual-mode: a resolvable file path is
// read, anything else is treated as the literal text payload. Unsupported
// types yield ErrUnsupportedFormat; engine failures yield *ExtractionError.
// Emptiness of the result is the caller's concern, not the extractor's.
func (e *Extractor) Extract(ctx context.Context, source string, mediaType MediaType) (string, error) {
	e.log.Debug("extracting text", "media_type", mediaType)

	switch mediaType {
	case MediaTypePDF:
		return e.extractPDF(source)

	case MediaTypeWord, MediaTypeWordXML:
		return e.extractWord(source, mediaType)

	case MediaTypePlainText:
		if _, err := os.Stat(source); err == nil {
			b, err := os.ReadFile(source)
			if err != nil {
				return "", &ExtractionError{MediaType: mediaType, Err: err}
			}
			return string(b), nil
		}
		// Not a resolvable path: the source string is the payload itself.
		return source, nil

	case MediaTypeJPEG, MediaTypePNG, MediaTypeTIFF:
		return e.extractImage(ctx, source, mediaType)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}
}

func (e *Extractor) extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}
	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", &ExtractionError{MediaType: MediaTypePDF, Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.log.Warn("failed to extract text from page", "page", i, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (e *Extractor) extractWord(path string, mediaType MediaType) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{MediaType: mediaType, Err: err}
	}
	defer f.Close()

	var text string
	if mediaType == MediaTypeWordXML {
		text, _, err = docconv.ConvertDocx(f)
	} else {
		text, _, err = docconv.ConvertDoc(f)
	}
	if err != nil {
		return "", &ExtractionError{MediaType: mediaType, Err: err}
	}
	return text, nil
}

// extractImage routes raster images through the OCR capability. The session
// acquired by Begin is released exactly once on every exit path.
func (e *Extractor) extractImage(ctx context.Context, path string, mediaType MediaType) (string, error) {
	if e.ocr == nil {
		return "", &ExtractionError{MediaType: mediaType, Err: fmt.Errorf("no OCR capability configured")}
	}

	session, err := e.ocr.Begin(e.ocrLanguage)
	if err != nil {
		return "", &ExtractionError{MediaType: mediaType, Err: err}
	}
	defer func() {
		if cerr := session.End(); cerr != nil {
			e.log.Warn("failed to release OCR session", "error", cerr)
		}
	}()

	text, err := session.Recognize(ctx, path)
	if err != nil {
		return "", &ExtractionError{MediaType: mediaType, Err: err}
	}
	return text, nil
}

// DetectMediaType sniffs a file's content and maps it onto the supported
// media-type set, for callers without a declared type (e.g. the CLI).
func DetectMediaType(path string) (MediaType, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	supported := []MediaType{
		MediaTypePDF, MediaTypeWord, MediaTypeWordXML, MediaTypePlainText,
		MediaTypeJPEG, MediaTypePNG, MediaTypeTIFF,
	}
	for mt := m; mt != nil; mt = mt.Parent() {
		for _, want := range supported {
			if mt.Is(string(want)) {
				return want, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, m.String())
}
