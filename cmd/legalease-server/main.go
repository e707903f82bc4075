// Command legalease-server exposes the analysis pipeline over HTTP.
//
// Routes:
//
//	POST /api/analyze            multipart "document" upload or JSON {"text": ...}
//	POST /api/ask                {"question", "context", "language"}
//	POST /api/questions          {"context"}
//	POST /api/translate          {"text", "targetLanguage", "sourceLanguage"}
//	POST /api/translate-summary  {"summary", "documentType", "targetLanguage"}
//	GET  /api/languages
//	GET  /api/health
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	legalease "github.com/vivaneiona/legalease"
	"google.golang.org/genai"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}

	gen := legalease.NewGeminiGenerator(client, legalease.Model(os.Getenv("GEMINI_MODEL")), log)
	svc, err := legalease.New(gen, legalease.WithLogger(log))
	if err != nil {
		return fmt.Errorf("assemble service: %w", err)
	}

	srv := &server{svc: svc, log: log, uploads: os.TempDir()}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/analyze", srv.analyze)
	api.POST("/ask", srv.ask)
	api.POST("/questions", srv.questions)
	api.POST("/translate", srv.translate)
	api.POST("/translate-summary", srv.translateSummary)
	api.GET("/languages", srv.languages)
	api.GET("/health", srv.health)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Info("listening", "addr", addr)
	return router.Run(addr)
}

type server struct {
	svc     *legalease.Service
	log     *slog.Logger
	uploads string
}

// analyze accepts either a multipart file upload under "document" or a JSON
// body carrying raw text. Uploads are staged in a uuid-named temp file and
// removed once the pipeline returns.
func (s *server) analyze(c *gin.Context) {
	source, mediaType, cleanup, err := s.stageInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	analysis, err := s.svc.Analyze(c.Request.Context(), source, mediaType)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, legalease.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// stageInput resolves the analyze request into a source (file path or literal
// text) and its media type.
func (s *server) stageInput(c *gin.Context) (string, legalease.MediaType, func(), error) {
	noop := func() {}

	file, err := c.FormFile("document")
	if err == nil {
		path := filepath.Join(s.uploads, uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, path); err != nil {
			return "", "", noop, fmt.Errorf("store upload: %w", err)
		}
		cleanup := func() {
			if err := os.Remove(path); err != nil {
				s.log.Warn("failed to remove upload", "path", path, "error", err)
			}
		}
		mediaType, err := legalease.DetectMediaType(path)
		if err != nil {
			cleanup()
			return "", "", noop, err
		}
		return path, mediaType, cleanup, nil
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		return "", "", noop, fmt.Errorf("request needs a document upload or a text field")
	}
	return body.Text, legalease.MediaTypePlainText, noop, nil
}

func (s *server) ask(c *gin.Context) {
	var body struct {
		Question string `json:"question" binding:"required"`
		Context  string `json:"context" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.svc.Ask(c.Request.Context(), body.Question, body.Context, body.Language))
}

func (s *server) questions(c *gin.Context) {
	var body struct {
		Context string `json:"context" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	questions := s.svc.SuggestQuestions(c.Request.Context(), body.Context)
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *server) translate(c *gin.Context) {
	var body struct {
		Text           string `json:"text" binding:"required"`
		TargetLanguage string `json:"targetLanguage" binding:"required"`
		SourceLanguage string `json:"sourceLanguage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.svc.Translate(c.Request.Context(), body.Text, body.TargetLanguage, body.SourceLanguage))
}

func (s *server) translateSummary(c *gin.Context) {
	var body struct {
		Summary        string `json:"summary" binding:"required"`
		DocumentType   string `json:"documentType"`
		TargetLanguage string `json:"targetLanguage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.svc.TranslateSummary(c.Request.Context(), body.Summary, body.DocumentType, body.TargetLanguage))
}

func (s *server) languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": s.svc.AvailableLanguages()})
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
