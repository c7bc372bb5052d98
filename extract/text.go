package extract

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// flatten joins the trimmed, non-empty text nodes under n with single
// spaces. Subtrees for which skip returns true contribute nothing.
func flatten(n *html.Node, skip func(*html.Node) bool) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if skip != nil && skip(n) {
				return
			}
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template:
				return
			}
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
