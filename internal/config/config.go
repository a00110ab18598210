package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/docrtf/internal/rtf"
)

type Config struct {
	Port string

	// Auth
	DocrtfAPIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool

	// RTF output
	RTFHyperlinks  bool
	PDFHyperlinks  bool
	CompactRTF     bool
	RTFOutput      string
	StylesheetFile string
	OutputLanguage string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocrtfAPIKey: os.Getenv("DOCRTF_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		RTFHyperlinks:  envBool("RTF_HYPERLINKS", true),
		PDFHyperlinks:  envBool("PDF_HYPERLINKS", false),
		CompactRTF:     envBool("COMPACT_RTF", false),
		RTFOutput:      envOr("RTF_OUTPUT", "rtf"),
		StylesheetFile: os.Getenv("RTF_STYLESHEET_FILE"),
		OutputLanguage: envOr("OUTPUT_LANGUAGE", "en"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocrtfAPIKey == "" {
		return fmt.Errorf("DOCRTF_API_KEY is required")
	}
	if c.StylesheetFile != "" {
		if _, err := os.Stat(c.StylesheetFile); err != nil {
			return fmt.Errorf("RTF_STYLESHEET_FILE: %w", err)
		}
	}
	return nil
}

// RenderOptions returns the rendering switches carried by the config.
func (c Config) RenderOptions() rtf.Options {
	return rtf.Options{
		EnableHyperlinks: c.RTFHyperlinks,
		EnablePDFTargets: c.PDFHyperlinks,
		CompactNumbering: c.CompactRTF,
		OutputDir:        c.RTFOutput,
	}
}

// Styles returns the default style table merged with the configured
// style sheet file, if any.
func (c Config) Styles() (*rtf.StyleTable, error) {
	if c.StylesheetFile == "" {
		return rtf.DefaultStyles(), nil
	}
	return rtf.LoadStyles(c.StylesheetFile)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
