package ocr

import (
	"bytes"
	"image"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func tinyPNG() []byte {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Expect(png.Encode(&buf, img)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("stripDataURI", func() {
	It("removes a data-URI header", func() {
		Expect(stripDataURI("data:image/png;base64,AAAA")).To(Equal("AAAA"))
	})

	It("leaves a bare payload unchanged", func() {
		Expect(stripDataURI("AAAA")).To(Equal("AAAA"))
	})

	It("leaves a malformed data URI without base64 marker unchanged", func() {
		Expect(stripDataURI("data:text/plain,hello")).To(Equal("data:text/plain,hello"))
	})
})

var _ = Describe("format sniffing", func() {
	It("recognizes a PDF header", func() {
		Expect(isPDF([]byte("%PDF-1.7 rest of file"))).To(BeTrue())
		Expect(isPDF(tinyPNG())).To(BeFalse())
	})

	It("recognizes a HEIC ftyp box", func() {
		data := append([]byte{0, 0, 0, 24}, []byte("ftypheic")...)
		data = append(data, make([]byte, 8)...)
		Expect(isHEIC(data)).To(BeTrue())
	})

	It("rejects short or unrelated data", func() {
		Expect(isHEIC([]byte("short"))).To(BeFalse())
		Expect(isHEIC(tinyPNG())).To(BeFalse())
	})
})

var _ = Describe("normalizeUpload", func() {
	When("the upload is already a raster image", func() {
		It("passes it through untouched", func() {
			data := tinyPNG()
			out, converted, err := normalizeUpload(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(converted).To(BeFalse())
			Expect(out).To(Equal(data))
		})
	})
})

var _ = Describe("toPNG", func() {
	It("re-encodes a decodable image as PNG", func() {
		out, err := toPNG(tinyPNG())
		Expect(err).NotTo(HaveOccurred())
		_, err = png.Decode(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
	})

	It("fails on undecodable data", func() {
		_, err := toPNG([]byte("not an image"))
		Expect(err).To(HaveOccurred())
	})
})
