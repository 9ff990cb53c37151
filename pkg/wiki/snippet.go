package wiki

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags flattens an HTML fragment to its text content, decoding
// entities along the way.
func StripTags(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tz.Text())
		}
	}
}
