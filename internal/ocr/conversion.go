package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// isPDF checks the PDF magic header.
func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// isHEIC checks if the image data is in HEIC/HEIF format.
// HEIC files carry an ftyp box with a HEIC-related brand at offset 4.
func isHEIC(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	if string(data[4:8]) != "ftyp" {
		return false
	}
	brand := string(data[8:12])
	return brand == "heic" || brand == "heif" || brand == "mif1" || brand == "msf1"
}

// pdfToPNG renders the first page of a PDF as PNG. Supplier invoices
// arriving as email attachments are almost always single page.
func pdfToPNG(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	return encodePNG(img)
}

// heicToPNG decodes a HEIC/HEIF phone photo and re-encodes it as PNG.
func heicToPNG(data []byte) ([]byte, error) {
	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
	}
	return encodePNG(img)
}

// imageToPNG converts any standard image format (JPEG, PNG, GIF) to PNG.
func imageToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeUpload converts the formats the Vision endpoint will not
// accept (PDF attachments, HEIC phone photos) to PNG. Everything else
// passes through untouched. Returns whether conversion occurred.
func normalizeUpload(data []byte) ([]byte, bool, error) {
	switch {
	case isPDF(data):
		pngData, err := pdfToPNG(data)
		if err != nil {
			return nil, false, err
		}
		return pngData, true, nil
	case isHEIC(data):
		pngData, err := heicToPNG(data)
		if err != nil {
			return nil, false, err
		}
		return pngData, true, nil
	}
	return data, false, nil
}

// toPNG converts any supported upload to PNG, the one format the
// Gemini image part is always sent as.
func toPNG(data []byte) ([]byte, error) {
	switch {
	case isPDF(data):
		return pdfToPNG(data)
	case isHEIC(data):
		return heicToPNG(data)
	}
	return imageToPNG(data)
}
