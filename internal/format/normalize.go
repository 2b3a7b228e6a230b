package format

import "regexp"

// rewriteRule is one whole-text substitution.
type rewriteRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// The minus-sign cascade. The subtraction rule in normalizeRules runs
// first and spaces every minus that follows a value; these three then
// re-tighten the minuses that are really literal signs, negations or
// exponent signs. The cleanup pass reruns exactly this subset.
var (
	minusLiteralRule = rewriteRule{
		"minus-literal-sign",
		regexp.MustCompile(`(^|[,(\[{=])([ \t]*)-[ \t]+(\d)`),
		"$1$2-$3",
	}
	minusNegationRule = rewriteRule{
		"minus-negation",
		regexp.MustCompile(`([*/+])([ \t]*)-[ \t]+(\d)`),
		"$1$2-$3",
	}
	minusExponentRule = rewriteRule{
		"minus-exponent",
		regexp.MustCompile(`(\d[eE])[ \t]*-[ \t]*(\d)`),
		"$1-$2",
	}
)

// normalizeRules is the ordered substitution list applied after the
// indentation scan. The order is part of the contract: later rules
// re-tighten spacing an earlier rule introduced. None of the spacing
// regexes may cross a newline or consume leading whitespace, or they
// would destroy the indentation just computed.
var normalizeRules = []rewriteRule{
	// "within" clause: canonical internal spacing, then exactly one
	// blank line after it unless it ends the file.
	{"within-spacing", regexp.MustCompile(`within[ \t]+([\w.]+)[ \t]*;`), "within $1;"},
	{"within-blank-line", regexp.MustCompile(`(within [\w.]+;)\n+([^\n])`), "$1\n\n$2"},

	// One space after a comma that is not already followed by whitespace.
	{"comma-space", regexp.MustCompile(`,([^\s])`), ", $1"},

	// One space on both sides of the binary operators. Compound
	// operators (<=, >=, ==, :=, <>) are left alone; the slash rule
	// splits "//" comment markers, which the cleanup pass repairs.
	{"plus-spacing", regexp.MustCompile(`(\S)[ \t]*\+[ \t]*([^\n])`), "$1 + $2"},
	{"star-spacing", regexp.MustCompile(`(\S)[ \t]*\*[ \t]*([^\n])`), "$1 * $2"},
	{"slash-spacing", regexp.MustCompile(`(\S)[ \t]*/[ \t]*([^\n])`), "$1 / $2"},
	{"equals-spacing", regexp.MustCompile(`([^<>=:\s])[ \t]*=[ \t]*([^=\n])`), "$1 = $2"},
	{"less-spacing", regexp.MustCompile(`([^<>=\s])[ \t]*<[ \t]*([^<=>\n])`), "$1 < $2"},
	{"greater-spacing", regexp.MustCompile(`([^<>=\s])[ \t]*>[ \t]*([^=\n])`), "$1 > $2"},

	// Minus disambiguation, in cascade order: subtraction first, then
	// the sign/negation/exponent re-tightenings.
	{"minus-subtraction", regexp.MustCompile(`([\w)\]}])[ \t]*-[ \t]*([^\n])`), "$1 - $2"},
	minusLiteralRule,
	minusNegationRule,
	minusExponentRule,

	{"annotation-call", regexp.MustCompile(`annotation[ \t]+\(`), "annotation("},

	// Colon expressions carry no spaces. One rule for the bare bracket
	// form, one shared by bracketed ranges and for-loop range headers.
	{"colon-empty-brackets", regexp.MustCompile(`\[[ \t]*:[ \t]*\]`), "[:]"},
	{"colon-range", regexp.MustCompile(`([\w\])])[ \t]*:[ \t]*([\w\[(+-])`), "$1:$2"},

	// No space between an opening bracket and a negative-number sign.
	{"bracket-negative", regexp.MustCompile(`([\[{])[ \t]+-`), "$1-"},

	// Exactly one space after the declaration keywords.
	{"declaration-keyword-space", regexp.MustCompile(`\b(parameter|input|output|constant)[ \t]+`), "$1 "},

	// Three or more consecutive blank lines collapse to one.
	{"blank-line-collapse", regexp.MustCompile(`\n{4,}`), "\n\n"},

	// Exactly one blank line after a section header, unless the header
	// ends the file.
	{"section-blank-line", regexp.MustCompile(`(?m)^([ \t]*(?:initial )?(?:equation|algorithm))\n+([^\n])`), "$1\n\n$2"},
}

// normalizeTokens applies each rule exactly once, in order. Matches do
// not overlap, so a chain like "a+b+c" resolves only its leftmost pair:
// the second minus/plus shares its left operand with the first match
// and is skipped. The partially spaced result is a fixed point of the
// rule, which keeps repeated formatting stable.
func normalizeTokens(text string) string {
	for _, r := range normalizeRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}
