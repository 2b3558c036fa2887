package extract

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{name: "text content type", filename: "notes", contentType: "text/plain; charset=utf-8"},
		{name: "markdown extension", filename: "notes.md"},
		{name: "sniffed utf8", filename: "upload", contentType: "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Text(tt.filename, tt.contentType, []byte("Q: a\nA: b\n"))
			require.NoError(t, err)
			assert.Equal(t, "Q: a\nA: b\n", got)
		})
	}
}

func TestText_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := Text("photo.png", "image/png", []byte{0x89, 'P', 'N', 'G', 0xff, 0xfe})
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "image/png")
}

// buildPDF writes a minimal PDF with one page per content stream, all using
// Helvetica as /F1.
func buildPDF(pages ...string) []byte {
	n := len(pages)
	fontObj := 3 + 2*n
	objects := make([]string, 0, fontObj)
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := ""
	for i := 0; i < n; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n))

	for i, content := range pages {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontObj, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestText_PDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "single run",
			pages: []string{"BT /F1 12 Tf 72 712 Td (Hello World) Tj ET"},
			want:  "Hello World\n",
		},
		{
			name:  "rows top to bottom",
			pages: []string{"BT /F1 12 Tf 1 0 0 1 72 690 Tm (Second row) Tj 1 0 0 1 72 712 Tm (Top row) Tj ET"},
			want:  "Top row Second row\n",
		},
		{
			name:  "kerned runs stay one word",
			pages: []string{"BT /F1 12 Tf 1 0 0 1 72 712 Tm [(W) 120 (orld)] TJ ET"},
			want:  "World\n",
		},
		{
			name: "one line per page",
			pages: []string{
				"BT /F1 12 Tf 72 712 Td (Channels) Tj ET",
				"BT /F1 12 Tf 72 712 Td (Goroutines) Tj ET",
			},
			want: "Channels\nGoroutines\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Text("notes.pdf", "application/pdf", buildPDF(tt.pages...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_BrokenPDF(t *testing.T) {
	t.Parallel()

	_, err := Text("slides.pdf", "application/pdf", []byte("%PDF-1.4\nthis is not really a pdf"))
	require.ErrorIs(t, err, ErrUnreadablePDF)
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kindPDF, kind("a.PDF", "", nil))
	assert.Equal(t, kindPDF, kind("blob", "", []byte("%PDF-1.7")))
	assert.Equal(t, kindPDF, kind("x", "application/pdf", nil))
	assert.Equal(t, kindText, kind("x.csv", "", []byte{0xff}))
	assert.Equal(t, kindUnknown, kind("x.bin", "application/zip", []byte("PK")))
}
