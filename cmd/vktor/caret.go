package main

import (
	"strings"

	"golang.org/x/text/width"
)

// caretLine renders a line of the form "^" positioned under the byte at
// offset within line, accounting for East-Asian wide runes so the caret
// lines up visually under terminals that render them as two columns wide.
// This mirrors the approach the example corpus uses to compute caret
// alignment for error messages (see DESIGN.md).
func caretLine(line []byte, offset int) string {
	if offset > len(line) {
		offset = len(line)
	}
	var b strings.Builder
	for _, r := range string(line[:offset]) {
		if width.LookupRune(r).Kind() == width.EastAsianWide {
			b.WriteString("  ")
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}

// lineAt returns the line of data containing byte offset off, along with
// off's offset within that line.
func lineAt(data []byte, off int64) (line []byte, col int) {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	start := int64(0)
	for i := int64(0); i < off; i++ {
		if data[i] == '\n' {
			start = i + 1
		}
	}
	end := int64(len(data))
	for i := off; i < int64(len(data)); i++ {
		if data[i] == '\n' {
			end = i
			break
		}
	}
	return data[start:end], int(off - start)
}
