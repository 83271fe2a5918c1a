package core

import (
	"io"
	"strings"

	"mxshs/vbcrawler/src/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractCards reads a rendered page and returns one domain.Card per game
// block. Cards without a header are dropped.
func ExtractCards(r io.Reader, sel Selector) ([]domain.Card, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var cards []domain.Card

	doc.Find(sel.Card).Each(func(i int, s *goquery.Selection) {
		header := s.Find(sel.Header).First()
		if header.Length() == 0 {
			return
		}
		league := strings.Join(TextLines(header), " ")

		s.Find(sel.Game).Each(func(i int, g *goquery.Selection) {
			cards = append(cards, domain.Card{
				League: league,
				Lines:  TextLines(g),
			})
		})
	})

	return cards, nil
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "section": true, "table": true, "tr": true, "ul": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// TextLines approximates the browser's innerText of a selection split into
// lines: block elements and <br> end a line, runs of whitespace collapse,
// empty lines are dropped.
func TextLines(s *goquery.Selection) []string {
	var (
		out []string
		cur strings.Builder
	)

	flush := func() {
		if line := strings.Join(strings.Fields(cur.String()), " "); line != "" {
			out = append(out, line)
		}
		cur.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
			if n.Data == "br" {
				flush()
				return
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		} else if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cur.WriteByte(' ')
		}
	}

	for _, n := range s.Nodes {
		walk(n)
		flush()
	}

	return out
}
