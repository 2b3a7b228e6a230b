package format

import "strings"

// Options configures the formatting engine.
type Options struct {
	// TabWidth is the number of spaces per indentation level.
	TabWidth int
	// PrintWidth is accepted for host compatibility. No line wrapping is
	// performed, so the value never influences the output.
	PrintWidth int
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = 2
	}
	if o.PrintWidth <= 0 {
		o.PrintWidth = 80
	}
	return o
}

func (o Options) indentUnit() string {
	return strings.Repeat(" ", o.TabWidth)
}
