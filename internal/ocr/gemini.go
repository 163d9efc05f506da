package ocr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// transcriptPrompt asks the model for a verbatim transcript rather
// than an interpretation; the extraction heuristics downstream expect
// raw invoice text, line breaks preserved.
const transcriptPrompt = `Transcribe all text visible in this invoice image.

Important:
- Reproduce the text exactly as printed, top to bottom
- Keep each printed line on its own line
- Do not summarize, interpret, or reorder anything
- Do not add any commentary before or after the transcript
- If the image contains no readable text, return an empty response`

// Gemini implements the Provider interface using Google Gemini as a
// transcription engine.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	http   *http.Client
}

// NewGemini creates a new Gemini Provider instance
func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-pro"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// DetectText transcribes the invoice image. Unlike the Vision API,
// Gemini takes inline bytes only, so URL references are fetched first.
func (g *Gemini) DetectText(ctx context.Context, req Request) (string, error) {
	var data []byte
	var err error
	switch {
	case req.ImageBase64 != "":
		data, err = inlineBytes(req.ImageBase64)
	case req.ImageURL != "":
		data, err = g.fetchImage(ctx, req.ImageURL)
	default:
		return "", fmt.Errorf("an image or image url is required")
	}
	if err != nil {
		return "", err
	}

	pngData, err := toPNG(data)
	if err != nil {
		return "", err
	}

	parts := []genai.Part{
		genai.ImageData("png", pngData),
		genai.Text(transcriptPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini")
	}

	var transcript strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			transcript.WriteString(string(text))
		}
	}

	return strings.TrimSpace(transcript.String()), nil
}

// fetchImage downloads a remote invoice image.
func (g *Gemini) fetchImage(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image (status %d)", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return data, nil
}

// Close closes the Gemini client
func (g *Gemini) Close() error {
	return g.client.Close()
}
