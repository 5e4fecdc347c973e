package ui

import (
	"strconv"
	"strings"

	"github.com/samdwyer/termsweeper/internal/field"
)

// Board geometry shared by the text and full-screen drivers:
//
//	 |123456789|
//	-|---------|
//	1|.........|
//	 ...
//	9|.........|
//	-|---------|
//
// Column labels are 1-based and show only the last digit; row labels are
// right-aligned to the width of the largest row number.

// labelWidth returns the width of the row label column for a board.
func labelWidth(size int) int {
	return len(strconv.Itoa(size))
}

// columnLabel returns the header digit for a zero-based column.
func columnLabel(col int) rune {
	return rune('0' + (col+1)%10)
}

// BoardLines renders a snapshot as plain text lines.
func BoardLines(board [][]field.Symbol, glyph func(field.Symbol) rune) []string {
	size := len(board)
	lw := labelWidth(size)

	lines := make([]string, 0, size+3)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lw))
	b.WriteByte('|')
	for col := range size {
		b.WriteRune(columnLabel(col))
	}
	b.WriteByte('|')
	lines = append(lines, b.String())

	sep := strings.Repeat("-", lw) + "|" + strings.Repeat("-", size) + "|"
	lines = append(lines, sep)

	for row := range board {
		b.Reset()
		label := strconv.Itoa(row + 1)
		b.WriteString(strings.Repeat(" ", lw-len(label)))
		b.WriteString(label)
		b.WriteByte('|')
		for _, sym := range board[row] {
			b.WriteRune(glyph(sym))
		}
		b.WriteByte('|')
		lines = append(lines, b.String())
	}

	return append(lines, sep)
}
