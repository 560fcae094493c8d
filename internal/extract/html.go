package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// LooksLikeHTML reports whether raw input is an HTML document rather than
// plain text. Emailed purchase orders frequently arrive as HTML.
func LooksLikeHTML(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<!doctype") {
		return true
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<html") || strings.Contains(lower, "<body")
}

// VisibleText extracts the visible text from an HTML document, skipping
// scripts and styles, so the field patterns run against what a reader sees
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String(), nil
}
