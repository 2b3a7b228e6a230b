package format

import "strings"

// reindentControlLines is the corrective second pass. Inside each
// equation/algorithm section it rewrites every control-structure
// keyword line to exactly one level below the section header. The
// header's level is measured from its own leading whitespace, not
// recomputed from nesting, so control structures nested more than one
// level deep all land on the same indent. That flattening matches the
// behavior this formatter reproduces and is not corrected here.
func reindentControlLines(text string, opt Options) string {
	unit := opt.indentUnit()
	lines := strings.Split(text, "\n")
	inSection := false
	sectionLevel := 0
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case isSectionKeyword(line):
			inSection = true
			sectionLevel = measureLevel(raw, opt.TabWidth)
		case isSectionExit(line):
			inSection = false
		case inSection && isControlKeywordLine(line):
			lines[i] = emit(unit, sectionLevel+1, line)
		}
	}
	return strings.Join(lines, "\n")
}

// measureLevel converts a line's leading whitespace width into indent
// levels. Tabs count as single columns; the indentation scan only ever
// emits spaces.
func measureLevel(raw string, tabWidth int) int {
	if tabWidth <= 0 {
		return 0
	}
	width := len(raw) - len(strings.TrimLeft(raw, " \t"))
	return width / tabWidth
}

func isSectionExit(line string) bool {
	switch line {
	case "end", "end;", "public", "protected":
		return true
	}
	return strings.HasPrefix(line, "end ") && !isBlockCloser(line)
}

func isControlKeywordLine(line string) bool {
	return isBlockOpener(line) ||
		line == "else" ||
		strings.HasPrefix(line, "elseif ") ||
		isBlockCloser(line)
}
