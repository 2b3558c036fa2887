// Package extract reduces an uploaded file to the single text string handed
// to the card parser or the AI generator.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrUnreadablePDF   = errors.New("could not read PDF")
)

var pdfMagic = []byte("%PDF-")

// Text returns the text content of a file. PDFs are flattened page by page:
// the text rows of a page are joined with spaces and every page ends with a
// newline. Anything that looks like text is returned unchanged.
func Text(filename, contentType string, data []byte) (string, error) {
	switch kind(filename, contentType, data) {
	case kindPDF:
		return pdfText(data)
	case kindText:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, describe(filename, contentType))
	}
}

type fileKind int

const (
	kindUnknown fileKind = iota
	kindText
	kindPDF
)

func kind(filename, contentType string, data []byte) fileKind {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mediaType == "application/pdf", ext == ".pdf", bytes.HasPrefix(data, pdfMagic):
		return kindPDF
	case strings.HasPrefix(mediaType, "text/"):
		return kindText
	case ext == ".txt", ext == ".md", ext == ".csv":
		return kindText
	case (mediaType == "" || mediaType == "application/octet-stream") && utf8.Valid(data):
		return kindText
	}
	return kindUnknown
}

func pdfText(data []byte) (text string, err error) {
	// The reader panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, i, err)
		}
		b.WriteString(strings.Join(rowTexts(rows), " "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// rowTexts returns one string per text row, top of the page first. Glyph
// runs of a row are concatenated; the empty entries the reader records for
// a Td line move become a single space.
func rowTexts(rows pdf.Rows) []string {
	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		for _, t := range row.Content {
			if t.S == "" {
				if line.Len() > 0 && !strings.HasSuffix(line.String(), " ") {
					line.WriteString(" ")
				}
				continue
			}
			line.WriteString(t.S)
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func describe(filename, contentType string) string {
	if contentType != "" {
		return contentType
	}
	if filename != "" {
		return filename
	}
	return "unknown"
}
