package format

import (
	"regexp"
	"strings"
)

// splitCommentRe matches a line-comment marker that was split into
// "/ /", either by earlier tooling or by the division-spacing rule of
// the token normalizer.
var splitCommentRe = regexp.MustCompile(`/[ \t]+/`)

// identifierFixes is a fixed table of domain-specific tightenings:
// standards designators that the subtraction rule would otherwise pull
// apart, plus two parenthesized index idioms. The table is applied
// before the indentation scan and again by the cleanup pass.
var identifierFixes = []rewriteRule{
	{"standards-designator", regexp.MustCompile(`\b(IEC|IEEE|ISO|DIN)[ \t]*-[ \t]*(\d)`), "$1-$2"},
	{"index-idiom-n", regexp.MustCompile(`\(n[ \t]*-[ \t]*1\)`), "(n-1)"},
	{"index-idiom-i", regexp.MustCompile(`\(i[ \t]*-[ \t]*1\)`), "(i-1)"},
}

// preprocess normalizes line terminators and applies the repairs that
// must land before the text is split into lines.
func preprocess(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = splitCommentRe.ReplaceAllString(text, "//")
	return applyIdentifierFixes(text)
}

func applyIdentifierFixes(text string) string {
	for _, fix := range identifierFixes {
		text = fix.re.ReplaceAllString(text, fix.repl)
	}
	return text
}
