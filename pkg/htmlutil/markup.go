package htmlutil

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedElements are kept by SanitizeMarkup. Anything else is unwrapped,
// keeping its children, unless it is listed in droppedElements.
var allowedElements = map[string]bool{
	"svg":      true,
	"g":        true,
	"path":     true,
	"circle":   true,
	"ellipse":  true,
	"rect":     true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"title":    true,
	"span":     true,
	"i":        true,
	"b":        true,
	"strong":   true,
	"em":       true,
	"small":    true,
}

// droppedElements are removed together with everything inside them.
var droppedElements = map[string]bool{
	"script":        true,
	"style":         true,
	"iframe":        true,
	"object":        true,
	"embed":         true,
	"foreignobject": true,
	"template":      true,
	"noscript":      true,
	"form":          true,
	"input":         true,
	"textarea":      true,
	"button":        true,
	"link":          true,
	"meta":          true,
	"image":         true,
	"img":           true,
	"use":           true,
	"a":             true,
}

// allowedAttributes are the only attributes kept on allowed elements. Keys are
// compared lowercased.
var allowedAttributes = map[string]bool{
	"class":             true,
	"viewbox":           true,
	"xmlns":             true,
	"width":             true,
	"height":            true,
	"fill":              true,
	"fill-rule":         true,
	"clip-rule":         true,
	"stroke":            true,
	"stroke-width":      true,
	"stroke-linecap":    true,
	"stroke-linejoin":   true,
	"stroke-miterlimit": true,
	"opacity":           true,
	"transform":         true,
	"d":                 true,
	"cx":                true,
	"cy":                true,
	"r":                 true,
	"rx":                true,
	"ry":                true,
	"x":                 true,
	"y":                 true,
	"x1":                true,
	"y1":                true,
	"x2":                true,
	"y2":                true,
	"points":            true,
	"aria-hidden":       true,
	"focusable":         true,
	"role":              true,
}

// SanitizeMarkup parses s as an HTML fragment and re-renders only a safe subset
// of it: inline SVG shapes and a few phrasing elements with presentation
// attributes. Scripts, event handlers, links and embedded content never
// survive. Text is re-escaped on output.
func SanitizeMarkup(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	context := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	nodes, err := html.ParseFragment(strings.NewReader(strings.ToValidUTF8(s, "")), context)
	if err != nil {
		// The tokenizer is lenient enough that this only happens on reader
		// errors; fall back to plain text.
		return html.EscapeString(StripAllTags(s))
	}

	root := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	cleanChildren(root)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return html.EscapeString(StripAllTags(s))
		}
	}
	return strings.TrimSpace(buf.String())
}

// cleanChildren filters the children of n in place.
func cleanChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling

		switch c.Type {
		case html.TextNode:
			// kept; html.Render escapes it
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			switch {
			case droppedElements[name]:
				n.RemoveChild(c)
			case allowedElements[name]:
				c.Attr = cleanAttributes(c.Attr)
				cleanChildren(c)
			default:
				cleanChildren(c)
				unwrap(n, c)
			}
		default:
			// comments, doctypes and raw nodes
			n.RemoveChild(c)
		}

		c = next
	}
}

func cleanAttributes(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		key := strings.ToLower(a.Key)
		if !allowedAttributes[key] {
			continue
		}
		if strings.Contains(strings.ToLower(a.Val), "javascript:") || strings.Contains(strings.ToLower(a.Val), "url(") {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// unwrap replaces c with its children.
func unwrap(parent, c *html.Node) {
	for gc := c.FirstChild; gc != nil; {
		next := gc.NextSibling
		c.RemoveChild(gc)
		parent.InsertBefore(gc, c)
		gc = next
	}
	parent.RemoveChild(c)
}
