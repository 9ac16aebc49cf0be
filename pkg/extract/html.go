package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// elements whose subtrees carry no article text
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"noscript": true,
}

// htmlBodyText walks the parsed document and collects text nodes, preferring
// the body element and pruning script/style/nav/header/footer subtrees. Used
// when trafilatura can't find an article.
func htmlBodyText(data []byte) string {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	root := doc
	if body := findElement(doc, "body"); body != nil {
		root = body
	}

	var sb strings.Builder
	collectText(root, &sb)
	return strings.TrimSpace(sb.String())
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
