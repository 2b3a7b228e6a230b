package format

import "strings"

// blockKind identifies a control construct opened inside an equation or
// algorithm section.
type blockKind uint8

const (
	blockIf blockKind = iota
	blockWhen
	blockFor
)

// blockFrame records one open control block. level is the indent level
// the opener line was emitted at; else branches realign to it and the
// matching closer pops it.
type blockFrame struct {
	kind  blockKind
	level int
}

// scanState is the ambient state of the indentation scan, threaded
// through indentLine explicitly so each step is testable on its own.
// The indent level never goes negative; class-end decrements clamp at
// zero. Exactly one section is considered active at a time even though
// the two section flags are stored independently.
type scanState struct {
	level       int
	inEquation  bool
	inAlgorithm bool
	blocks      []blockFrame
}

func (s scanState) inSection() bool {
	return s.inEquation || s.inAlgorithm
}

func (s scanState) enterSection(keyword string) scanState {
	switch keyword {
	case "equation", "initial equation":
		s.inEquation = true
		s.inAlgorithm = false
	case "algorithm", "initial algorithm":
		s.inAlgorithm = true
		s.inEquation = false
	}
	return s
}

func (s scanState) leaveSection() scanState {
	s.inEquation = false
	s.inAlgorithm = false
	return s
}

// classKeywords open a class-like declaration whose body is indented
// one level. Each entry requires a trailing space so that identifiers
// such as "modelica" do not match.
var classKeywords = []string{
	"model ",
	"block ",
	"package ",
	"function ",
	"record ",
	"connector ",
	"class ",
}

func isSectionKeyword(line string) bool {
	switch line {
	case "equation", "initial equation", "algorithm", "initial algorithm":
		return true
	}
	return false
}

func isClassOpener(line string) bool {
	for _, kw := range classKeywords {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return false
}

func isBlockOpener(line string) bool {
	if (strings.HasPrefix(line, "if ") || strings.HasPrefix(line, "when ")) && strings.HasSuffix(line, "then") {
		return true
	}
	return strings.HasPrefix(line, "for ") && strings.HasSuffix(line, "loop")
}

func openerKind(line string) blockKind {
	switch {
	case strings.HasPrefix(line, "when "):
		return blockWhen
	case strings.HasPrefix(line, "for "):
		return blockFor
	default:
		return blockIf
	}
}

func isBlockCloser(line string) bool {
	return strings.HasPrefix(line, "end if") ||
		strings.HasPrefix(line, "end when") ||
		strings.HasPrefix(line, "end for")
}

// isContinuation reports whether the previous raw line marks the
// current one as the tail of a multi-line statement. Only a trailing
// "(" or "," counts; intermediate lines of a longer expression that end
// differently are not detected.
func isContinuation(prevRaw string) bool {
	trimmed := strings.TrimSpace(prevRaw)
	return strings.HasSuffix(trimmed, "(") || strings.HasSuffix(trimmed, ",")
}

// indentLines runs the forward indentation scan over the preprocessed
// text, emitting every line with its computed indentation.
func indentLines(text string, opt Options) string {
	unit := opt.indentUnit()
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	st := scanState{}
	prevRaw := ""
	for _, raw := range lines {
		var emitted string
		st, emitted = indentLine(st, raw, prevRaw, unit)
		out = append(out, emitted)
		prevRaw = raw
	}
	return strings.Join(out, "\n")
}

// indentLine classifies one line and returns the updated scan state
// together with the emitted line. The checks run in strict priority
// order; the first match wins.
func indentLine(st scanState, raw, prevRaw, unit string) (scanState, string) {
	line := strings.TrimSpace(raw)

	// Blank lines pass through untouched.
	if line == "" {
		return st, ""
	}

	// Section keywords sit at the current level and switch the section.
	if isSectionKeyword(line) {
		st = st.enterSection(line)
		return st, emit(unit, st.level, line)
	}

	// Terminating keywords and visibility markers. The section-keyword
	// alternative can never fire here because the previous check already
	// returned; it stays as part of the terminating-keyword match.
	if line == "end" || line == "end;" || line == "public" || line == "protected" || isSectionKeyword(line) {
		if line == "end" || line == "end;" {
			st.level = dec(st.level)
		}
		st = st.leaveSection()
		return st, emit(unit, st.level, line)
	}

	// Class-like declarations indent their body one level.
	if isClassOpener(line) {
		out := emit(unit, st.level, line)
		st.level++
		return st, out
	}

	// "end <name>" closes a class-like declaration.
	if strings.HasPrefix(line, "end ") && !isBlockCloser(line) {
		st.level = dec(st.level)
		return st, emit(unit, st.level, line)
	}

	if st.inSection() {
		return indentSectionLine(st, line, prevRaw, unit)
	}

	// Declaration area: keep the current level.
	return st, emit(unit, st.level, line)
}

func indentSectionLine(st scanState, line, prevRaw, unit string) (scanState, string) {
	switch {
	case strings.HasPrefix(line, "//"):
		return st, emit(unit, st.level+1, line)

	case isBlockOpener(line):
		st.blocks = append(st.blocks, blockFrame{kind: openerKind(line), level: st.level + 1})
		out := emit(unit, st.level+1, line)
		st.level++
		return st, out

	case line == "else" || strings.HasPrefix(line, "elseif "):
		// Realign to the opener's level. With no open block the line
		// keeps the current level; unbalanced input is not diagnosed.
		if n := len(st.blocks); n > 0 {
			st.level = st.blocks[n-1].level
		}
		return st, emit(unit, st.level, line)

	case isBlockCloser(line):
		// An unmatched closer neither pops nor decrements, which keeps
		// the level from drifting on unbalanced input.
		if n := len(st.blocks); n > 0 {
			st.blocks = st.blocks[:n-1]
			st.level = dec(st.level)
		}
		return st, emit(unit, st.level, line)

	case isContinuation(prevRaw):
		return st, emit(unit, st.level+2, line)

	default:
		return st, emit(unit, st.level+1, line)
	}
}

func emit(unit string, level int, line string) string {
	return strings.Repeat(unit, level) + line
}

func dec(level int) int {
	if level <= 0 {
		return 0
	}
	return level - 1
}
