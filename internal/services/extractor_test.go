package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	extractor := NewExtractorService()

	t.Run("unsupported file type", func(t *testing.T) {
		text, err := extractor.ExtractText([]byte("plain text"), "txt")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
		assert.Equal(t, "", text)
	})

	t.Run("corrupt pdf degrades to empty text with an error", func(t *testing.T) {
		text, err := extractor.ExtractText([]byte("this is not a pdf"), "pdf")

		assert.Error(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("corrupt docx degrades to empty text with an error", func(t *testing.T) {
		text, err := extractor.ExtractText([]byte("this is not a zip archive"), "docx")

		assert.Error(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("file type match is case-insensitive", func(t *testing.T) {
		_, err := extractor.ExtractText([]byte("junk"), "PDF")

		// Reaches the pdf path and fails there rather than as an unknown type
		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "unsupported file type")
	})
}

func TestDocxParagraphs(t *testing.T) {
	t.Run("one line per paragraph in document order", func(t *testing.T) {
		xml := `<w:document><w:body>` +
			`<w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Second</w:t></w:r></w:p>` +
			`</w:body></w:document>`

		assert.Equal(t, "First paragraph\nSecond\n", docxParagraphs(xml))
	})

	t.Run("run attributes are tolerated", func(t *testing.T) {
		xml := `<w:p><w:r><w:t xml:space="preserve"> spaced </w:t></w:r></w:p>`

		assert.Equal(t, " spaced \n", docxParagraphs(xml))
	})

	t.Run("xml entities are unescaped", func(t *testing.T) {
		xml := `<w:p><w:r><w:t>C&amp;C &lt;tags&gt; &quot;quoted&quot;</w:t></w:r></w:p>`

		assert.Equal(t, "C&C <tags> \"quoted\"\n", docxParagraphs(xml))
	})

	t.Run("markup without paragraphs yields nothing", func(t *testing.T) {
		assert.Equal(t, "", docxParagraphs(`<w:document><w:body></w:body></w:document>`))
	})
}
