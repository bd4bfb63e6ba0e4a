package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	htm "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/soupyhq/soupy/internal/parser"
)

// Converter transforms raw HTML into Markdown text.
type Converter interface {
	Convert(rawHTML string) (string, error)
}

// LibraryConverter performs high-fidelity conversion via html-to-markdown.
type LibraryConverter struct{}

func (LibraryConverter) Convert(rawHTML string) (string, error) {
	markdown, err := htm.ConvertString(rawHTML)
	if err != nil {
		return "", fmt.Errorf("html-to-markdown conversion failed: %w", err)
	}
	return Clean(markdown), nil
}

// BlockConverter extracts the document's content blocks and renders them.
// It preserves headings, paragraphs, list items, links, blockquotes, and
// preformatted blocks; everything else is dropped.
type BlockConverter struct{}

func (BlockConverter) Convert(rawHTML string) (string, error) {
	doc, err := parser.Parse(rawHTML)
	if err != nil {
		return "", err
	}
	return RenderString(doc), nil
}

// CompositeConverter tries each converter in order until one succeeds with
// non-empty output. It fails only when every converter has failed or
// produced nothing, reporting the collected errors.
type CompositeConverter struct {
	Converters []Converter
}

func (c CompositeConverter) Convert(rawHTML string) (string, error) {
	var errs []error
	for _, conv := range c.Converters {
		markdown, err := conv.Convert(rawHTML)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(markdown) != "" {
			return markdown, nil
		}
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("all markdown converters failed: %w", errors.Join(errs...))
	}
	return "", nil
}

// DefaultConverter is the library converter with the block renderer as
// fallback.
func DefaultConverter() Converter {
	return CompositeConverter{
		Converters: []Converter{LibraryConverter{}, BlockConverter{}},
	}
}

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// Clean normalizes converted Markdown: trailing whitespace is stripped
// from every line and runs of blank lines are collapsed to one.
func Clean(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
