package movieapi

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText turns an API text field into plain text: tags are dropped,
// entities decoded and runs of whitespace collapsed
func CleanText(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	// Line breaks and paragraphs become spaces instead of gluing words together
	doc.Find("br, p, li").Each(func(i int, s *goquery.Selection) {
		s.BeforeHtml(" ")
	})

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Text(), " "))
}
