// Package parser builds a lenient HTML parse tree and extracts an ordered
// sequence of content blocks from it.
//
// Parsing is delegated to golang.org/x/net/html, which implements WHATWG
// error recovery: unclosed tags are closed at the nearest ancestor boundary
// and stray text is reparented into <body>. html.Parse only fails when the
// underlying reader fails, so malformed markup is tolerated best-effort.
package parser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Kind identifies the type of a content block.
type Kind int

const (
	// Heading is an <h1>..<h6> element. Level carries the heading depth.
	Heading Kind = iota
	// Paragraph is a <p> element.
	Paragraph
	// ListItem is an <li> element.
	ListItem
	// Link is an <a href=...> element that is not enclosed by any other
	// recognized block.
	Link
	// Blockquote is a <blockquote> element.
	Blockquote
	// Code is a <pre> element.
	Code
)

// Block is one semantic unit of extracted page content.
type Block struct {
	Kind  Kind
	Level int // heading depth, 1-6; zero for other kinds
	Text  string
	Href  string // link target; empty for other kinds
}

// Document is the ordered sequence of blocks extracted from one page.
// Block order matches element order in the source markup.
type Document []Block

// noiseTags are subtrees dropped before block extraction. They never
// contribute text to any block.
var noiseTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
	"canvas":   true,
	"iframe":   true,
	"form":     true,
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// Parse converts raw HTML into a Document.
//
// The tree is walked top to bottom in a single pass. The first recognized
// element on any root-to-leaf path wins: nested recognized elements are
// absorbed into the enclosing block's text rather than producing blocks of
// their own. Elements whose collapsed text is empty produce no block.
func Parse(rawHTML string) (Document, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var doc Document
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if noiseTags[n.Data] {
				return
			}

			if level, ok := headingLevels[n.Data]; ok {
				if text := collapsedText(n); text != "" {
					doc = append(doc, Block{Kind: Heading, Level: level, Text: text})
				}
				return
			}

			switch n.Data {
			case "p":
				if text := collapsedText(n); text != "" {
					doc = append(doc, Block{Kind: Paragraph, Text: text})
				}
				return
			case "li":
				if text := collapsedText(n); text != "" {
					doc = append(doc, Block{Kind: ListItem, Text: text})
				}
				return
			case "blockquote":
				if text := collapsedText(n); text != "" {
					doc = append(doc, Block{Kind: Blockquote, Text: text})
				}
				return
			case "pre":
				if text := rawText(n); text != "" {
					doc = append(doc, Block{Kind: Code, Text: text})
				}
				return
			case "a":
				if href := attr(n, "href"); href != "" {
					if text := collapsedText(n); text != "" {
						doc = append(doc, Block{Kind: Link, Text: text, Href: href})
					}
					return
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return doc, nil
}

// collapsedText gathers all text beneath n, skipping noise subtrees, and
// collapses runs of whitespace into single spaces.
func collapsedText(n *html.Node) string {
	var sb strings.Builder
	var gather func(*html.Node)
	gather = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteByte(' ')
			return
		}
		if node.Type == html.ElementNode && noiseTags[node.Data] {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			gather(c)
		}
	}
	gather(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}

// rawText gathers text beneath n without collapsing internal whitespace.
// Used for <pre> where indentation is significant.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var gather func(*html.Node)
	gather = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node.Type == html.ElementNode && noiseTags[node.Data] {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			gather(c)
		}
	}
	gather(n)

	return strings.Trim(sb.String(), "\n")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
