package scraper

import "fmt"

// Kind classifies a pipeline failure by the stage that produced it.
type Kind int

const (
	// KindNetwork covers unreachable hosts, timeouts, and non-2xx statuses.
	KindNetwork Kind = iota + 1
	// KindParse covers content that could not be parsed or converted.
	KindParse
	// KindIO covers filesystem failures while writing the output file.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a pipeline failure tagged with the stage kind and the URL being
// scraped. It wraps the underlying stage error.
type Error struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error scraping %s: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same kind, so
// errors.Is(err, scraper.ErrNetwork) tests the failure class.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for kind matching with errors.Is.
var (
	ErrNetwork = &Error{Kind: KindNetwork}
	ErrParse   = &Error{Kind: KindParse}
	ErrIO      = &Error{Kind: KindIO}
)
