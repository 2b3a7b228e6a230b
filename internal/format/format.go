package format

// Format reformats Modelica source text. It always returns text and
// never fails: unbalanced control structures and other malformed input
// fall back to the documented per-stage behavior instead of raising an
// error.
func Format(text string, opt Options) string {
	opt = opt.withDefaults()
	text = preprocess(text)
	text = indentLines(text, opt)
	text = normalizeTokens(text)
	text = reindentControlLines(text, opt)
	return cleanup(text)
}
