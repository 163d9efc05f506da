package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/crashbay/paintscan/internal/invoice"
	"github.com/crashbay/paintscan/internal/ocr"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	// Local development convenience; absent .env is fine
	_ = godotenv.Load()

	fs := ff.NewFlagSet("paintscan")
	var (
		port         = fs.IntLong("port", 8080, "HTTP server port")
		providerType = fs.StringLong("provider", "vision", "OCR provider: 'vision' or 'gemini'")
		visionKey    = fs.StringLong("vision-key", "", "Google Cloud Vision API key")
		visionURL    = fs.StringLong("vision-endpoint", "", "Vision API endpoint override (testing)")
		geminiKey    = fs.StringLong("gemini-key", "", "Google Gemini API key")
		geminiModel  = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		authUser     = fs.StringLong("auth-user", "", "Basic auth username (optional)")
		authPass     = fs.StringLong("auth-pass", "", "Basic auth password (optional)")
		showVersion  = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("PAINTSCAN"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Initialize OCR provider based on type
	var provider ocr.Provider
	var err error
	switch *providerType {
	case "vision":
		if *visionKey == "" {
			slog.Error("Vision API key is required. Set --vision-key flag or PAINTSCAN_VISION_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Vision provider...")
		provider, err = ocr.NewVision(*visionKey, *visionURL)
		if err != nil {
			slog.Error("Failed to initialize Vision", "error", err)
			os.Exit(1)
		}
	case "gemini":
		if *geminiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or PAINTSCAN_GEMINI_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini provider...", "model", *geminiModel)
		provider, err = ocr.NewGemini(*geminiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Invalid provider type", "type", *providerType, "valid", "vision or gemini")
		os.Exit(1)
	}
	defer provider.Close()

	// Initialize service
	scanService := invoice.NewService(provider)

	// Initialize server
	basicAuth := invoice.BasicAuth{
		Username: *authUser,
		Password: *authPass,
	}
	server := invoice.NewServer(scanService, basicAuth)

	// Start server in goroutine
	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := server.Start(addr); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr))
	if *authUser != "" || *authPass != "" {
		slog.Info("Basic auth enabled", "user", *authUser)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
}
