package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws box centered on top of base. Both are multi-line
// strings; base is padded out to width x height so the box splices cleanly
// into every covered row.
func overlayCenter(base, box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	boxLines := strings.Split(box, "\n")
	boxH := len(boxLines)
	boxW := 0
	for _, line := range boxLines {
		if w := ansi.StringWidth(line); w > boxW {
			boxW = w
		}
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxLines = boxLines[:height]
		boxH = height
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	baseLines := padLines(base, width, height)

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			out = append(out, baseLines[row])
			continue
		}

		boxLine := boxLines[row-top]
		if pad := boxW - ansi.StringWidth(boxLine); pad > 0 {
			boxLine += strings.Repeat(" ", pad)
		} else if pad < 0 {
			boxLine = ansi.Truncate(boxLine, boxW, "")
		}

		baseLine := baseLines[row]
		out = append(out,
			ansi.Cut(baseLine, 0, left)+boxLine+ansi.Cut(baseLine, left+boxW, width))
	}
	return strings.Join(out, "\n")
}

// padLines normalizes content into exactly height lines of width cells.
func padLines(content string, width, height int) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		w := ansi.StringWidth(line)
		if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		} else if w > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return lines
}
