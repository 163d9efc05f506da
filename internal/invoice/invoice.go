package invoice

// ScanRequest is the body of a scan call. The image may be inline
// base64 (optionally as a data URI) or a remote URL; at least one of
// the two must be present.
type ScanRequest struct {
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

// Valid reports whether the request references an image at all.
func (r ScanRequest) Valid() bool {
	return r.Image != "" || r.ImageURL != ""
}
