package extract

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Summarize", func() {
	var (
		text    string
		summary Summary
	)

	JustBeforeEach(func() {
		summary = Summarize(text)
	})

	When("given a full invoice transcript", func() {
		BeforeEach(func() {
			text = "PAINT MY RIDE\nTucker, GA\nInvoice # 1807583\nPaint 2 Quarts k3g 122.00 122.00\nTotal $202.00"
		})

		It("extracts the supplier from the header", func() {
			Expect(summary.Supplier).To(Equal("PAINT MY RIDE"))
		})

		It("extracts the invoice number", func() {
			Expect(summary.InvoiceNumber).To(Equal("1807583"))
		})

		It("extracts the total", func() {
			Expect(summary.Cost).NotTo(BeNil())
			Expect(*summary.Cost).To(Equal(202.00))
		})

		It("formats the paint line item into the notes", func() {
			Expect(summary.Notes).To(ContainSubstring("k3g"))
			Expect(summary.Notes).To(ContainSubstring("2 Quart"))
		})
	})

	When("a line fuses the quantity and unit into one token", func() {
		BeforeEach(func() {
			text = "SHOP\nPaint 0.5pint WA8624 RED\nTotal $10.00"
		})

		It("still parses it as a structured item", func() {
			Expect(summary.Notes).To(Equal("Unknown | WA8624 | RED | 0.5 Pint"))
		})
	})

	When("paint lines exist but none parse structurally", func() {
		BeforeEach(func() {
			text = "SHOP LLC\nPaint job special\nPaint and prep only\nTotal $99.00"
		})

		It("falls back to the loose paint-line filter", func() {
			Expect(summary.Notes).To(Equal("Paint job special\nPaint and prep only"))
		})
	})

	When("no line mentions paint at all", func() {
		BeforeEach(func() {
			text = "SOME SUPPLY HOUSE\nClear coat 2 each\nTotal $45.00"
		})

		It("falls back to the raw transcript", func() {
			Expect(summary.Notes).To(Equal(text))
		})
	})

	When("the transcript is longer than the excerpt bound", func() {
		BeforeEach(func() {
			text = strings.Repeat("x", 900)
		})

		It("truncates the notes to 800 characters", func() {
			Expect(summary.Notes).To(HaveLen(800))
			Expect(summary.Notes).To(Equal(text[:800]))
		})
	})

	When("the transcript is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("returns empty fields without failing", func() {
			Expect(summary.Supplier).To(Equal(""))
			Expect(summary.InvoiceNumber).To(Equal(""))
			Expect(summary.Cost).To(BeNil())
			Expect(summary.Notes).To(Equal(""))
		})
	})

	When("the transcript is binary garbage", func() {
		BeforeEach(func() {
			text = "\x00\xff\xfe garbage \x01\nmore \x7f garbage"
		})

		It("terminates with a well-formed result", func() {
			Expect(summary.Cost).To(BeNil())
			Expect(summary.Notes).To(Equal(text))
		})
	})
})
