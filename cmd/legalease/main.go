// Command legalease analyzes, questions, and translates legal documents from
// the terminal. Results are printed as JSON on stdout; logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	legalease "github.com/vivaneiona/legalease"
	"google.golang.org/genai"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "legalease",
		Short:         "AI-assisted legal document analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd(), newAskCmd(), newTranslateCmd(), newLanguagesCmd())
	return root
}

func newService(ctx context.Context) (*legalease.Service, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	gen := legalease.NewGeminiGenerator(client, legalease.Model(os.Getenv("GEMINI_MODEL")), slog.Default())
	return legalease.New(gen, legalease.WithLogger(slog.Default()))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAnalyzeCmd() *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Extract clauses, risks, and insights from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}

			mt := legalease.MediaType(mediaType)
			if mt == "" {
				mt, err = legalease.DetectMediaType(args[0])
				if err != nil {
					return err
				}
				slog.Debug("detected media type", "media_type", mt)
			}

			analysis, err := svc.Analyze(ctx, args[0], mt)
			if err != nil {
				return err
			}
			return printJSON(analysis)
		},
	}
	cmd.Flags().StringVarP(&mediaType, "media-type", "t", "", "declared media type (default: sniffed from content)")
	return cmd
}

func newAskCmd() *cobra.Command {
	var contextFile, language string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question against a document context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}

			docContext, err := os.ReadFile(contextFile)
			if err != nil {
				return fmt.Errorf("read context file: %w", err)
			}
			return printJSON(svc.Ask(ctx, args[0], string(docContext), language))
		},
	}
	cmd.Flags().StringVarP(&contextFile, "context", "c", "", "path to the document context (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "en", "language code for the answer")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

func newTranslateCmd() *cobra.Command {
	var source, target string

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate legal text between languages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			return printJSON(svc.Translate(ctx, args[0], target, source))
		},
	}
	cmd.Flags().StringVarP(&source, "from", "f", "en", "source language code")
	cmd.Flags().StringVarP(&target, "to", "o", "hi", "target language code")
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported translation languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(legalease.AvailableLanguages())
		},
	}
}
