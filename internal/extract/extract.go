// Package extract turns presentation, PDF and office files into ordered
// source units, one per slide or page, and writes the per-document TXT
// exports that the notation scanner reads back.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/turkish"
	"kvkkrag/pkg/logger"
)

// Kind is the source format of a document.
type Kind string

const (
	KindPPTX Kind = "pptx"
	KindPDF  Kind = "pdf"
	KindDoc  Kind = "doc"
	KindTXT  Kind = "txt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrNoDocuments       = errors.New("no supported documents found")
)

// Document is an extracted input file.
type Document struct {
	Name  string
	Path  string
	Kind  Kind
	Units []domain.SourceUnit
}

// Stem is the file name without its extension.
func (d Document) Stem() string {
	return strings.TrimSuffix(d.Name, filepath.Ext(d.Name))
}

// UnitLabel is the Turkish word used for the document's units in exports.
func (d Document) UnitLabel() string {
	if d.Kind == KindPDF {
		return "Sayfa"
	}
	return "Slayt"
}

var log = logger.New("extract")

// KindOf maps a file extension to a document kind.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pptx":
		return KindPPTX, nil
	case ".pdf":
		return KindPDF, nil
	case ".docx", ".odt", ".rtf":
		return KindDoc, nil
	case ".txt":
		return KindTXT, nil
	default:
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
}

// File extracts one document. Unit text is NFC-normalised with LF line endings.
func File(path string) (Document, error) {
	kind, err := KindOf(path)
	if err != nil {
		return Document{}, err
	}
	doc := Document{Name: filepath.Base(path), Path: path, Kind: kind}

	var units []domain.SourceUnit
	switch kind {
	case KindPPTX:
		units, err = extractPPTX(path, doc.Name)
	case KindPDF:
		units, err = extractPDF(path, doc.Name)
	case KindDoc:
		units, err = extractOffice(path, doc.Name)
	case KindTXT:
		units, err = extractTXT(path, doc.Name)
	}
	if err != nil {
		return Document{}, fmt.Errorf("extract %s: %w", doc.Name, err)
	}
	for i := range units {
		units[i].Text = strings.TrimSpace(turkish.Normalize(units[i].Text))
	}
	doc.Units = units
	return doc, nil
}

// Dir extracts every supported file directly under dir in lexicographic
// order. Unreadable files are logged and skipped.
func Dir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		if _, err := KindOf(e.Name()); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var docs []Document
	for _, name := range names {
		doc, err := File(filepath.Join(dir, name))
		if err != nil {
			log.Warn("skipping unreadable document", "file", name, "error", err)
			continue
		}
		log.Debug("document extracted", "file", name, "units", len(doc.Units))
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDocuments)
	}
	return docs, nil
}

// Units flattens the units of docs in document order.
func Units(docs []Document) []domain.SourceUnit {
	var out []domain.SourceUnit
	for _, d := range docs {
		out = append(out, d.Units...)
	}
	return out
}
