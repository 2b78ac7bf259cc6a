// =============================================================================
// fulltext.go - optional article body extraction
// =============================================================================
//
// Only active behind the FETCH_FULLTEXT flag. Items are processed in their
// existing order up to the configured limit; each failure is silent and
// per-item, so enrichment can never abort a run.
//
// HTML pages go through readability after a goquery pre-pass that removes
// tables and comment blocks. PDF links get plain-text extraction instead.
//
// =============================================================================
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

// Enricher downloads article pages and extracts their main body text.
type Enricher struct {
	client    *http.Client
	userAgent string
}

// NewEnricher creates an Enricher sharing the fetcher's HTTP settings.
func NewEnricher(cfg FetchConfig) *Enricher {
	return &Enricher{client: cfg.Client, userAgent: cfg.UserAgent}
}

// EnrichFulltext fills Content in place for up to limit items. Items with an
// empty URL and items beyond the limit are left untouched; so is any item
// whose extraction fails or comes back empty.
func (e *Enricher) EnrichFulltext(items []Item, limit int) {
	for i := range items {
		if i >= limit {
			break
		}
		if items[i].URL == "" {
			continue
		}
		body, err := e.Extract(items[i].URL)
		if err != nil || body == "" {
			continue
		}
		items[i].Content = body
	}
}

// Extract downloads one article URL and returns its main body text.
func (e *Enricher) Extract(articleURL string) (string, error) {
	req, err := http.NewRequest("GET", articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if isPDF(articleURL, resp.Header.Get("Content-Type")) {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("reading PDF: %w", err)
		}
		return extractPDFText(data)
	}
	return extractHTMLText(resp.Body)
}

func isPDF(articleURL, contentType string) bool {
	if strings.Contains(contentType, "application/pdf") {
		return true
	}
	u, err := url.Parse(articleURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}

// extractHTMLText strips tables and comment sections, then runs readability
// to isolate the main article body.
func extractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("HTML parse failed: %w", err)
	}
	doc.Find("table, aside, .comments, #comments, .comment-list, #respond").Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("HTML serialize failed: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), nil)
	if err != nil {
		return "", fmt.Errorf("content extraction failed: %w", err)
	}
	return strings.TrimSpace(article.TextContent), nil
}

// extractPDFText extracts plain text from every page of a PDF document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("PDF parse failed: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.Join(strings.Fields(sb.String()), " "), nil
}
