// Package format reformats Modelica source text into a canonically
// indented and spaced form.
//
// The pipeline is five ordered text-to-text stages: preprocessing,
// line-oriented indentation, token normalization, corrective
// re-indentation of control-structure lines, and a final cleanup that
// repairs what the middle stages disturb. Each stage consumes the full
// output of the previous one.
//
// The package performs no I/O and no grammar-level parsing: unbalanced
// or malformed input is handled by documented fallbacks, and Format
// returns text for any input text.
package format
