package legalease

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// OCR is the recognition capability consumed by the extractor. A session is
// acquired with Begin and must be released with End exactly once, regardless
// of recognition outcome.
type OCR interface {
	Begin(languageHint string) (OCRSession, error)
}

// OCRSession recognizes images until released.
type OCRSession interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
	End() error
}

// commandRunner lets tests stub external commands.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	log *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		r.log.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10),
		)
	} else {
		r.log.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", time.Since(start).Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}
	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// TesseractOCR implements OCR by shelling out to the tesseract binary.
type TesseractOCR struct {
	binary string
	runner commandRunner
	log    *slog.Logger
}

// TesseractOption configures a TesseractOCR.
type TesseractOption func(*TesseractOCR)

// WithTesseractBinary overrides the binary name or absolute path.
func WithTesseractBinary(path string) TesseractOption {
	return func(t *TesseractOCR) { t.binary = path }
}

// WithTesseractLogger overrides the default logger.
func WithTesseractLogger(log *slog.Logger) TesseractOption {
	return func(t *TesseractOCR) { t.log = log }
}

// NewTesseractOCR builds a tesseract-backed OCR capability.
func NewTesseractOCR(opts ...TesseractOption) *TesseractOCR {
	t := &TesseractOCR{binary: "tesseract", log: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	if t.runner == nil {
		t.runner = execRunner{log: t.log}
	}
	return t
}

// Begin verifies the binary is reachable and acquires a scratch directory
// for recognition artifacts. The returned session must be released with End.
func (t *TesseractOCR) Begin(languageHint string) (OCRSession, error) {
	if languageHint == "" {
		languageHint = "eng"
	}
	if _, err := exec.LookPath(t.binary); err != nil {
		return nil, fmt.Errorf("tesseract not available: %w", err)
	}
	workDir, err := os.MkdirTemp("", "legalease-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("create ocr scratch dir: %w", err)
	}
	t.log.Debug("ocr session started", "language", languageHint, "work_dir", workDir)
	return &tesseractSession{ocr: t, lang: languageHint, workDir: workDir}, nil
}

type tesseractSession struct {
	ocr     *TesseractOCR
	lang    string
	workDir string

	mu    sync.Mutex
	ended bool
}

// Recognize runs tesseract over one image and returns the recognized text.
func (s *tesseractSession) Recognize(ctx context.Context, imagePath string) (string, error) {
	s.mu.Lock()
	ended := s.ended
	s.mu.Unlock()
	if ended {
		return "", fmt.Errorf("ocr session already released")
	}

	args := []string{imagePath, "stdout", "-l", s.lang}
	out, errb, err := s.ocr.runner.Run(ctx, s.ocr.binary, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 256))
	}
	return string(out), nil
}

// End releases the session's scratch directory. Safe to call once; further
// calls are no-ops returning nil.
func (s *tesseractSession) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil
	}
	s.ended = true
	s.ocr.log.Debug("ocr session released", "work_dir", s.workDir)
	return os.RemoveAll(s.workDir)
}
