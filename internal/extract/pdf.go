package extract

import (
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"

	"kvkkrag/internal/domain"
)

// PageTimeout bounds text extraction of a single PDF page.
var PageTimeout = 10 * time.Second

func extractPDF(path, name string) ([]domain.SourceUnit, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	var units []domain.SourceUnit
	for i := 1; i <= f.NumPage(); i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := protectExtract(page)
		if err != nil {
			log.Warn("page extraction failed", "file", name, "page", i, "error", err)
			continue
		}
		units = append(units, domain.SourceUnit{Document: name, Index: i, Text: content})
	}
	return units, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)
	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(PageTimeout):
		return "", errors.New("page extraction timed out")
	}
}

// docx, odt and rtf carry no page model; the whole file is one unit.
func extractOffice(path, name string) ([]domain.SourceUnit, error) {
	text, err := cat.File(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return []domain.SourceUnit{{Document: name, Index: 1, Text: text}}, nil
}
