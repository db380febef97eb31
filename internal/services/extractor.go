package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type ExtractorService interface {
	ExtractText(content []byte, fileType string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText implements ExtractorService.
//
// Total over pdf/docx input: the returned text is always defined and empty on
// failure, with the error carrying the failure reason for the caller's log.
// Callers are expected to store the (possibly empty) text and keep going.
func (e *extractorService) ExtractText(content []byte, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		text, err := extractPDFText(content)
		if err != nil {
			return "", fmt.Errorf("pdf extraction failed: %w", err)
		}
		return text, nil
	case "docx":
		text, err := extractDocxText(content)
		if err != nil {
			return "", fmt.Errorf("docx extraction failed: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

func extractPDFText(content []byte) (text string, err error) {
	// The pdf library panics on some malformed documents; recover so a corrupt
	// upload degrades to empty text instead of killing the worker.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("panic while reading pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page contributes nothing
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

func extractDocxText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	return docxParagraphs(doc.Editable().GetContent()), nil
}

var docxRunTextRegex = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// docxParagraphs flattens word/document.xml markup into plain text, one line
// per paragraph in document order.
func docxParagraphs(documentXML string) string {
	var textBuilder strings.Builder
	for _, paragraph := range strings.Split(documentXML, "</w:p>") {
		if !strings.Contains(paragraph, "<w:p") {
			continue
		}
		for _, run := range docxRunTextRegex.FindAllStringSubmatch(paragraph, -1) {
			textBuilder.WriteString(xmlEntityReplacer.Replace(run[1]))
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String()
}
