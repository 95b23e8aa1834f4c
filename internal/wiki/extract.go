package wiki

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	ContentRootSelector = "#mw-content-text"
	MaxParagraphs       = 500

	excludedSelector = "script, style, footer, header, nav, table"
)

var (
	ErrContentRootNotFound = errors.New("could not find main content")

	citationMarkerRe = regexp.MustCompile(`\[\d+\]`)
)

// Extract returns the readable paragraph text under the first element
// matching rootSelector. Paragraph texts are concatenated without a separator.
func Extract(r io.Reader, rootSelector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find(excludedSelector).Remove()

	root := doc.Find(rootSelector).First()
	if root.Length() == 0 {
		return "", ErrContentRootNotFound
	}

	var textBuilder strings.Builder
	count := 0

	root.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if count >= MaxParagraphs {
			return false
		}
		count++

		textBuilder.WriteString(p.Text())
		return true
	})

	return normalizeText(textBuilder.String()), nil
}

func normalizeText(text string) string {
	text = citationMarkerRe.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
