package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Extractor pulls human-readable plain text out of raw HTML.
// Implementations differ in how aggressively they discard page chrome.
type Extractor interface {
	Extract(rawHTML string) (string, error)
}

// HeuristicExtractor joins the text of all <p> elements.
// Fast and often good enough for article-like pages.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n\n"), nil
}

// ReadabilityExtractor runs readability article extraction over the page,
// falling back to whole-document text when no article can be isolated.
type ReadabilityExtractor struct {
	// PageURL resolves relative references during extraction. Optional.
	PageURL *url.URL
}

func (r ReadabilityExtractor) Extract(rawHTML string) (string, error) {
	pageURL := r.PageURL
	if pageURL == nil {
		pageURL = &url.URL{Scheme: "https", Host: "localhost"}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text != "" {
		return text, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return strings.TrimSpace(doc.Text()), nil
}

// CompositeExtractor runs each extractor in order and returns the first
// non-empty result. Individual extractor errors do not stop the chain.
type CompositeExtractor struct {
	Extractors []Extractor
}

func (c CompositeExtractor) Extract(rawHTML string) (string, error) {
	var errs []error
	for _, e := range c.Extractors {
		text, err := e.Extract(rawHTML)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("all extractors failed: %w", errors.Join(errs...))
	}
	return "", nil
}
