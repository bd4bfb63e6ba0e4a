// Package markdown turns extracted content into Markdown text. It offers a
// library-backed converter and a block renderer built on the parser's
// document model, composable as a fallback chain.
package markdown

import (
	"strings"

	"github.com/soupyhq/soupy/internal/parser"
)

// Render maps a document to Markdown lines, one rendering per block.
// A single blank line separates adjacent blocks, except between
// consecutive list items so that lists stay contiguous.
//
// Rendering is a pure function of the document: same input, same output.
func Render(doc parser.Document) []string {
	var lines []string
	for i, block := range doc {
		if i > 0 {
			if !(doc[i-1].Kind == parser.ListItem && block.Kind == parser.ListItem) {
				lines = append(lines, "")
			}
		}
		lines = append(lines, renderBlock(block)...)
	}
	return lines
}

// RenderString renders a document to a single Markdown string with a
// trailing newline.
func RenderString(doc parser.Document) string {
	lines := Render(doc)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderBlock(b parser.Block) []string {
	switch b.Kind {
	case parser.Heading:
		return []string{strings.Repeat("#", b.Level) + " " + b.Text}
	case parser.ListItem:
		return []string{"- " + b.Text}
	case parser.Link:
		return []string{"[" + b.Text + "](" + b.Href + ")"}
	case parser.Blockquote:
		var lines []string
		for _, line := range strings.Split(b.Text, "\n") {
			lines = append(lines, "> "+line)
		}
		return lines
	case parser.Code:
		fence := codeFence(b.Text)
		lines := []string{fence}
		lines = append(lines, strings.Split(b.Text, "\n")...)
		return append(lines, fence)
	default:
		return []string{b.Text}
	}
}

// codeFence returns a fence longer than any backtick run in text, so code
// that itself contains fences stays inside the block.
func codeFence(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
