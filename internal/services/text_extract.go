package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
)

const unsupportedFormatMessage = "Unsupported file type. Supported formats: PDF, DOCX, TXT, MD"

// ExtractText converts an uploaded file into plain text, dispatching on the
// filename extension alone (the upload path never sniffs bytes).
// Supported: PDF, DOCX, TXT, MD.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt", ".md":
		return extractPlainText(data)
	default:
		return "", apierr.UnsupportedFormat(unsupportedFormatMessage)
	}
}

// extractPDF walks the document page by page, labeling each page before its
// text, then trims surrounding whitespace.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		fmt.Fprintf(&out, "Page %d\n", i)
		out.WriteString(text)
		out.WriteString("\n")
	}
	return strings.TrimSpace(out.String()), nil
}

// extractDOCX reads word/document.xml out of the zip container and emits one
// line per paragraph (concatenated <w:t> runs).
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx container: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("docx document.xml: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("docx document.xml: %w", err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("docx container: missing word/document.xml")
	}

	var out strings.Builder
	dec := xml.NewDecoder(bytes.NewReader(docXML))
	var paragraph strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var run string
				if err := dec.DecodeElement(&run, &t); err != nil {
					return "", fmt.Errorf("docx text run: %w", err)
				}
				paragraph.WriteString(run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				out.WriteString(paragraph.String())
				out.WriteString("\n")
				paragraph.Reset()
			}
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// extractPlainText returns the bytes verbatim; unlike the PDF and DOCX paths
// nothing is trimmed.
func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(data), nil
}
