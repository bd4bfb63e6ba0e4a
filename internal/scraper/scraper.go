// Package scraper orchestrates the fetch, parse, convert, and write stages
// for a single URL.
//
// Each call owns its intermediate state; nothing is cached or shared across
// calls, so separate Scraper instances (or separate calls on one instance)
// never contend on in-process state.
package scraper

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/soupyhq/soupy/internal/fetcher"
	"github.com/soupyhq/soupy/internal/markdown"
	"github.com/soupyhq/soupy/internal/parser"
	"github.com/soupyhq/soupy/internal/writer"
)

// Config holds configuration options for the scraper.
type Config struct {
	// UserAgent is the User-Agent header value sent with HTTP requests
	UserAgent string
	// Timeout specifies the maximum duration to wait for an HTTP request to complete
	Timeout time.Duration
	// MaxBodySize caps the fetched response body in bytes
	MaxBodySize int64
	// Verbose enables progress output on stdout
	Verbose bool
}

// DefaultConfig returns a default configuration with reasonable values.
func DefaultConfig() *Config {
	return &Config{
		UserAgent:   fetcher.DefaultUserAgent,
		Timeout:     15 * time.Second,
		MaxBodySize: fetcher.DefaultMaxBodySize,
	}
}

// Scraper runs the scrape pipeline: fetch, convert to Markdown, write.
type Scraper struct {
	Config    *Config
	fetcher   *fetcher.Fetcher
	converter markdown.Converter
	extractor parser.Extractor // nil means the default per-page chain
}

// New creates a new scraper with the given configuration.
// If config is nil, default configuration will be used.
func New(config *Config) *Scraper {
	if config == nil {
		config = DefaultConfig()
	}
	return &Scraper{
		Config:    config,
		fetcher:   fetcher.New(config.UserAgent, config.Timeout, config.MaxBodySize),
		converter: markdown.DefaultConverter(),
	}
}

// Scrape fetches url, converts the page to Markdown, and writes it to
// {outputDir}/{filename}.md. It returns the destination path on success.
//
// When the converter chain produces no Markdown, the page falls through to
// plain-text extraction (readability first, then paragraph text) so that
// pages without recognized block structure still save their readable text.
// A page that yields nothing either way is a parse failure.
//
// Failures are tagged with the stage kind: fetch failures are network
// errors, conversion and extraction failures are parse errors, and write
// failures are io errors. No partial file is left behind when fetch or
// conversion fails; the write stage is only reached with complete Markdown
// in hand.
func (s *Scraper) Scrape(ctx context.Context, url, filename, outputDir string) (string, error) {
	vis := newVisualizer(s.Config.Verbose, url)
	vis.start()

	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		vis.fail(err)
		return "", &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	vis.fetched(result)

	md, err := s.converter.Convert(result.HTML)
	if err != nil {
		vis.fail(err)
		return "", &Error{Kind: KindParse, URL: url, Err: err}
	}

	if strings.TrimSpace(md) == "" {
		md, err = s.extractText(result.URL, result.HTML)
		if err != nil {
			vis.fail(err)
			return "", &Error{Kind: KindParse, URL: url, Err: err}
		}
	}
	if strings.TrimSpace(md) == "" {
		err := errors.New("page has no extractable content")
		vis.fail(err)
		return "", &Error{Kind: KindParse, URL: url, Err: err}
	}

	path, err := writer.Write(md, filename, outputDir)
	if err != nil {
		vis.fail(err)
		return "", &Error{Kind: KindIO, URL: url, Err: err}
	}

	vis.saved(path, len(md))
	return path, nil
}

// extractText runs the plain-text extraction chain over the page.
func (s *Scraper) extractText(pageURL, rawHTML string) (string, error) {
	ex := s.extractor
	if ex == nil {
		var u *url.URL
		if parsed, err := url.Parse(pageURL); err == nil {
			u = parsed
		}
		ex = parser.CompositeExtractor{Extractors: []parser.Extractor{
			parser.ReadabilityExtractor{PageURL: u},
			parser.HeuristicExtractor{},
		}}
	}
	return ex.Extract(rawHTML)
}
