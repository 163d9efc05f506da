package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crashbay/paintscan/internal/extract"
	"github.com/crashbay/paintscan/internal/ocr"
)

// emptyTranscriptNotes marks the valid terminal state where the OCR
// provider succeeded but found no text in the image.
const emptyTranscriptNotes = "No text detected in invoice image"

// Service orchestrates one scan: transcribe, then extract.
type Service struct {
	provider ocr.Provider
}

// NewService creates a new Service
func NewService(provider ocr.Provider) *Service {
	return &Service{provider: provider}
}

// ProcessScan transcribes the referenced invoice image and extracts
// the structured summary. Only the provider call can fail; everything
// about the text's shape is absorbed by the extractors' fallbacks.
func (s *Service) ProcessScan(ctx context.Context, req ScanRequest) (*extract.Summary, error) {
	text, err := s.provider.DetectText(ctx, ocr.Request{
		ImageBase64: req.Image,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("detecting text: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return &extract.Summary{Notes: emptyTranscriptNotes}, nil
	}

	summary := extract.Summarize(text)
	slog.Info("Extracted invoice summary",
		"supplier", summary.Supplier,
		"invoice_number", summary.InvoiceNumber,
		"has_cost", summary.Cost != nil,
	)
	return &summary, nil
}
