package rewrite

import (
	"regexp"
	"strings"
)

var (
	boldRe      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe    = regexp.MustCompile(`\*(.*?)\*`)
	mdHeadingRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	mdLinkRe    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanText strips the markdown artifacts chat models habitually add to
// plain-text rewrites: bold and italic markers, heading hashes, link
// syntax, and runs of blank lines.
func CleanText(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = mdHeadingRe.ReplaceAllString(text, "")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
