package strutil

import (
	"errors"
	"strings"
)

var ErrRectangleTooSmall = errors.New("rectangle must be at least 2x2")

// RectangleString draws a width x height box using box-drawing characters,
// one row per line, each terminated by a newline:
//
//	┌────┐
//	│    │
//	└────┘
func RectangleString(width, height int) (string, error) {
	if width < 2 || height < 2 {
		return "", ErrRectangleTooSmall
	}

	var sb strings.Builder

	sb.WriteString("┌" + strings.Repeat("─", width-2) + "┐\n")
	for i := 0; i < height-2; i++ {
		sb.WriteString("│" + strings.Repeat(" ", width-2) + "│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", width-2) + "┘\n")

	return sb.String(), nil
}
