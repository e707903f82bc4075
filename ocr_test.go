package legalease

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner records invocations instead of executing anything.
type stubRunner struct {
	stdout []byte
	err    error
	calls  [][]string
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.stdout, nil, r.err
}

// testBinary is an executable path guaranteed to exist: the test binary.
func newStubbedTesseract(runner commandRunner) *TesseractOCR {
	return &TesseractOCR{binary: os.Args[0], runner: runner, log: quietLogger()}
}

func TestTesseractSession_RecognizeInvokesBinary(t *testing.T) {
	runner := &stubRunner{stdout: []byte("scanned text\n")}
	ocr := newStubbedTesseract(runner)

	session, err := ocr.Begin("")
	require.NoError(t, err)
	defer session.End()

	text, err := session.Recognize(context.Background(), "page.png")
	require.NoError(t, err)
	assert.Equal(t, "scanned text\n", text)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{os.Args[0], "page.png", "stdout", "-l", "eng"}, runner.calls[0])
}

func TestTesseractSession_LanguageHint(t *testing.T) {
	runner := &stubRunner{stdout: []byte("ok")}
	ocr := newStubbedTesseract(runner)

	session, err := ocr.Begin("hin")
	require.NoError(t, err)
	defer session.End()

	_, err = session.Recognize(context.Background(), "page.png")
	require.NoError(t, err)
	assert.Equal(t, "hin", runner.calls[0][4])
}

func TestTesseractSession_EndReleasesScratchDirOnce(t *testing.T) {
	ocr := newStubbedTesseract(&stubRunner{})

	session, err := ocr.Begin("eng")
	require.NoError(t, err)

	dir := session.(*tesseractSession).workDir
	_, err = os.Stat(dir)
	require.NoError(t, err)

	require.NoError(t, session.End())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// Releasing again is a no-op, not a double free.
	assert.NoError(t, session.End())
}

func TestTesseractSession_RecognizeAfterEndFails(t *testing.T) {
	ocr := newStubbedTesseract(&stubRunner{})

	session, err := ocr.Begin("eng")
	require.NoError(t, err)
	require.NoError(t, session.End())

	_, err = session.Recognize(context.Background(), "page.png")
	assert.Error(t, err)
}

func TestTesseractSession_RunnerFailureSurfaces(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	ocr := newStubbedTesseract(runner)

	session, err := ocr.Begin("eng")
	require.NoError(t, err)
	defer session.End()

	_, err = session.Recognize(context.Background(), "page.png")
	assert.ErrorContains(t, err, "tesseract")
}

func TestTesseractOCR_BeginFailsWhenBinaryMissing(t *testing.T) {
	ocr := NewTesseractOCR(
		WithTesseractBinary("/nonexistent/tesseract-binary"),
		WithTesseractLogger(quietLogger()),
	)

	_, err := ocr.Begin("eng")
	assert.Error(t, err)
}
