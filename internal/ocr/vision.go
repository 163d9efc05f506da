package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultVisionEndpoint = "https://vision.googleapis.com"

// Vision implements the Provider interface against the Google Cloud
// Vision REST API's text detection feature.
type Vision struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewVision creates a new Vision Provider instance. The endpoint is
// overridable for testing; an empty string selects the public API.
func NewVision(apiKey, endpoint string) (*Vision, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("vision api key is required")
	}
	if endpoint == "" {
		endpoint = defaultVisionEndpoint
	}

	return &Vision{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string             `json:"content,omitempty"`
	Source  *visionImageSource `json:"source,omitempty"`
}

type visionImageSource struct {
	ImageURI string `json:"imageUri"`
}

type visionFeature struct {
	Type string `json:"type"`
}

type visionResponse struct {
	Responses []visionAnnotateResponse `json:"responses"`
}

type visionAnnotateResponse struct {
	FullTextAnnotation *visionTextAnnotation    `json:"fullTextAnnotation"`
	TextAnnotations    []visionEntityAnnotation `json:"textAnnotations"`
	Error              *visionStatus            `json:"error"`
}

type visionTextAnnotation struct {
	Text string `json:"text"`
}

type visionEntityAnnotation struct {
	Description string `json:"description"`
}

type visionStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DetectText transcribes the invoice image. A response with no text
// annotations yields an empty transcript and a nil error.
func (v *Vision) DetectText(ctx context.Context, req Request) (string, error) {
	image := visionImage{}
	switch {
	case req.ImageBase64 != "":
		data, err := inlineBytes(req.ImageBase64)
		if err != nil {
			return "", err
		}
		data, _, err = normalizeUpload(data)
		if err != nil {
			return "", err
		}
		image.Content = base64.StdEncoding.EncodeToString(data)
	case req.ImageURL != "":
		image.Source = &visionImageSource{ImageURI: req.ImageURL}
	default:
		return "", fmt.Errorf("an image or image url is required")
	}

	reqBody := visionRequest{
		Requests: []visionAnnotateRequest{
			{
				Image:    image,
				Features: []visionFeature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/images:annotate", v.endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Transport errors embed the request URL, so the key must not
	// travel in it.
	httpReq.Header.Set("X-Goog-Api-Key", v.apiKey)

	resp, err := v.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, string(body))
	}

	var annotated visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&annotated); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(annotated.Responses) == 0 {
		return "", nil
	}

	result := annotated.Responses[0]
	if result.Error != nil {
		return "", fmt.Errorf("vision API error: %s", result.Error.Message)
	}
	if result.FullTextAnnotation != nil {
		return result.FullTextAnnotation.Text, nil
	}
	if len(result.TextAnnotations) > 0 {
		return result.TextAnnotations[0].Description, nil
	}

	// No text in the image: a valid terminal state, not an error.
	return "", nil
}

// Close closes the Vision provider (no-op for HTTP client)
func (v *Vision) Close() error {
	return nil
}
