// Package soupy fetches a web page, extracts its readable content, and
// saves it as a Markdown file.
//
// Most callers only touch the facade:
//
//	s := soupy.New()
//	path, err := s.SaveAsMarkdown(ctx, "https://example.com", "example", "")
//
// Batch use is the caller invoking SaveAsMarkdown once per URL in a loop;
// there is no built-in concurrency or rate limiting across calls.
package soupy

import (
	"context"

	"github.com/soupyhq/soupy/internal/scraper"
)

// DefaultOutputDir is used when SaveAsMarkdown is called with an empty
// output directory.
const DefaultOutputDir = "output"

// Soupy is the public entry point composing the scrape pipeline.
type Soupy struct {
	scraper *scraper.Scraper
}

// Config re-exports the scraper configuration.
type Config = scraper.Config

// New creates a Soupy facade with default configuration.
func New() *Soupy {
	return NewWithConfig(nil)
}

// NewWithConfig creates a Soupy facade. If config is nil, defaults apply.
func NewWithConfig(config *Config) *Soupy {
	return &Soupy{scraper: scraper.New(config)}
}

// SaveAsMarkdown scrapes url and writes the result to
// {outputDir}/{filename}.md, overwriting any existing file. An empty
// outputDir means DefaultOutputDir. It returns the saved path, or an error
// classified by stage; errors.Is against scraper.ErrNetwork, ErrParse, and
// ErrIO distinguishes why the scrape failed.
func (s *Soupy) SaveAsMarkdown(ctx context.Context, url, filename, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return s.scraper.Scrape(ctx, url, filename, outputDir)
}
