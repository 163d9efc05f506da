package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// Request identifies the invoice image to transcribe. ImageBase64 may
// carry a data-URI header, which is stripped before transmission. The
// transport validates that at least one field is set.
type Request struct {
	ImageBase64 string
	ImageURL    string
}

// Provider turns an invoice image into a plain-text transcript. An
// empty transcript with a nil error means the provider found no text,
// which callers treat as a valid terminal state, not a failure.
type Provider interface {
	DetectText(ctx context.Context, req Request) (string, error)
	// Close closes the provider and releases resources
	Close() error
}

// stripDataURI removes a "data:image/png;base64," style header from an
// inline payload. Payloads without a header pass through unchanged.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, "base64,"); i != -1 {
		return s[i+len("base64,"):]
	}
	return s
}

// inlineBytes decodes an inline base64 payload, tolerating a data-URI
// header.
func inlineBytes(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(stripDataURI(payload))
	if err != nil {
		return nil, fmt.Errorf("decoding inline image: %w", err)
	}
	return data, nil
}
