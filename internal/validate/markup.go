package validate

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes all tags from an HTML fragment and unescapes entities,
// returning only the text content.
func StripMarkup(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}
