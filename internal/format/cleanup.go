package format

// cleanup re-applies the fixes that the token normalizer and the
// corrective pass can disturb: comment markers split by the division
// rule, sign and exponent spacing, and the fixed identifier table.
// Order matters and mirrors the preprocessor's.
func cleanup(text string) string {
	text = splitCommentRe.ReplaceAllString(text, "//")
	for _, r := range []rewriteRule{minusLiteralRule, minusNegationRule, minusExponentRule} {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return applyIdentifierFixes(text)
}
