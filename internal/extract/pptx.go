package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"kvkkrag/internal/domain"
)

const drawingML = "http://schemas.openxmlformats.org/drawingml/2006/main"

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func extractPPTX(path, name string) ([]domain.SourceUnit, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}
	defer zr.Close()

	type part struct {
		num  int
		file *zip.File
	}
	var parts []part
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, part{num: n, file: f})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].num < parts[j].num })

	units := make([]domain.SourceUnit, 0, len(parts))
	for i, p := range parts {
		rc, err := p.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p.file.Name, err)
		}
		lines, err := slideLines(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p.file.Name, err)
		}
		units = append(units, domain.SourceUnit{Document: name, Index: i + 1, Text: strings.Join(lines, "\n")})
	}
	return units, nil
}

// slideLines collects the non-empty paragraphs of a slide in document order.
// Table rows become a single line with cells joined by " | ".
func slideLines(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		lines     []string
		para      strings.Builder
		inText    bool
		cellDepth int
		cellParas []string
		rowCells  []string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != drawingML {
				continue
			}
			switch t.Name.Local {
			case "p":
				para.Reset()
			case "t":
				inText = true
			case "br":
				para.WriteByte(' ')
			case "tr":
				rowCells = nil
			case "tc":
				cellDepth++
				cellParas = nil
			}
		case xml.EndElement:
			if t.Name.Space != drawingML {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				s := strings.TrimSpace(para.String())
				if s == "" {
					continue
				}
				if cellDepth > 0 {
					cellParas = append(cellParas, s)
				} else {
					lines = append(lines, s)
				}
			case "tc":
				cellDepth--
				if cell := strings.Join(cellParas, " "); cell != "" {
					rowCells = append(rowCells, cell)
				}
			case "tr":
				if len(rowCells) > 0 {
					lines = append(lines, strings.Join(rowCells, " | "))
				}
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
}
