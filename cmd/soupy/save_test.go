package main

import "testing"

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"host only", "https://example.com", "example.com"},
		{"host with path", "https://go.dev/doc/faq", "go.dev-doc-faq"},
		{"trailing slash", "https://example.com/blog/", "example.com-blog"},
		{"query ignored", "https://example.com/page?q=1", "example.com-page"},
		{"unsafe characters replaced", "https://example.com/a b/c", "example.com-a-b-c"},
		{"scheme-less input", "example.com/x", "example.com-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugFromURL(tt.url); got != tt.want {
				t.Errorf("slugFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
