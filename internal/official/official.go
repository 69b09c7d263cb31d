// Package official fetches the consolidated KVKK text from mevzuat.gov.tr.
package official

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultURL = "https://www.mevzuat.gov.tr/mevzuat?MevzuatNo=6698&MevzuatTur=1&MevzuatTertip=5"
	// FallbackRunes bounds the raw page text used when no content container is found.
	FallbackRunes = 5000
)

var contentSelectors = []string{"div#MevzuatMetni", "div.mevzuat-metin"}

// Fetcher downloads the official law page and returns its visible text.
type Fetcher struct {
	client *http.Client
	url    string
}

// NewFetcher wires an HTTP client; url defaults to DefaultURL.
func NewFetcher(client *http.Client, url string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{client: client, url: url}
}

func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request official text: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mevzuat returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	for _, sel := range contentSelectors {
		if content := doc.Find(sel).First(); content.Length() > 0 {
			return Text(content), nil
		}
	}
	return truncateRunes(string(body), FallbackRunes), nil
}

// Text joins the trimmed, non-empty text nodes under sel with single spaces.
func Text(sel *goquery.Selection) string {
	var parts []string
	collectText(sel, &parts)
	return strings.Join(parts, " ")
}

func collectText(sel *goquery.Selection, parts *[]string) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			if t := strings.TrimSpace(s.Text()); t != "" {
				*parts = append(*parts, t)
			}
		case "script", "style", "#comment":
		default:
			collectText(s, parts)
		}
	})
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
