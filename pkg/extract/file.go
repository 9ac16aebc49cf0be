// Package extract converts uploaded files and fetched web pages into plain
// text. Failures are classified (see Kind) so the caller can skip a bad
// source and keep processing the rest.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the per-file ceiling, checked before any parsing
const MaxFileSize = 10 * 1024 * 1024

// minFileText is the minimum usable text length for a single file
const minFileText = 10

// minPDFText guards against scanned/image-only PDFs
const minPDFText = 50

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"txt":  true,
	"md":   true,
	"ppt":  true,
	"pptx": true,
}

// FromFile extracts plain text from an uploaded file, dispatching by
// extension. The extension and size are validated before any read.
func FromFile(name string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if !allowedExtensions[ext] {
		return "", errf(KindUnsupportedType, "unsupported file type %q, allowed: pdf, docx, txt, md, ppt, pptx", ext)
	}
	if size > MaxFileSize {
		return "", errf(KindTooLarge, "file %s is too large (%d bytes), limit is 10MB", name, size)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "read file %s", name)
	}
	if len(data) > MaxFileSize {
		return "", errf(KindTooLarge, "file %s is too large, limit is 10MB", name)
	}

	var text string
	switch ext {
	case "pdf":
		text, err = fromPDF(data)
	case "docx":
		text, err = fromDOCX(data)
	case "ppt", "pptx":
		text, err = fromPPTX(data)
	default: // txt, md
		text = string(data)
	}
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) < minFileText {
		return "", errf(KindEmptyOrTooShort, "file %s appears to be empty or contains very little content", name)
	}

	return text, nil
}

// fromPDF extracts selectable text from a PDF document
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "parse pdf")
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "extract pdf text")
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return "", wrapf(KindExtractionFailed, err, "read pdf text")
	}

	text := strings.TrimSpace(sb.String())
	if len(text) < minPDFText {
		return "", errf(KindExtractionFailed, "pdf contains no extractable text (may be scanned images)")
	}

	return text, nil
}

// fromDOCX extracts raw text from a Word document
func fromDOCX(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "parse docx")
	}
	return text, nil
}

// Source is one successfully extracted input with its origin label
type Source struct {
	Name string
	Text string
}

// Combine joins extracted sources into a single text, each prefixed with its
// origin so the LLM can attribute content
func Combine(sources []Source) string {
	var sb strings.Builder
	for _, src := range sources {
		if src.Name != "" {
			fmt.Fprintf(&sb, "--- Content from %s ---\n\n", src.Name)
		}
		sb.WriteString(src.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
