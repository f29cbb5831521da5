// Package assets provides the CSS style sheets embedded in the binary.
//
// The "default" style is the fixed presentation contract: A4 page geometry,
// 2cm side and top margins with 2.5cm at the bottom, per-element typography
// for headings, paragraphs, lists, tables, code and block quotes, zebra
// striping for table bodies, widow/orphan control, and Chroma classes for
// syntax-highlighted code. It is a process-wide constant; nothing mutates
// it at runtime.
package assets
