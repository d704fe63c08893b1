package ui

import "strings"

// defaultDisplayLimit bounds the rendered text, separate from the record
// buffer: half a million characters is plenty of scrollback for a human
// and keeps redraws cheap.
const defaultDisplayLimit = 500_000

// displayBuffer keeps rendered lines under a total character budget,
// trimming the oldest whole lines once the budget is exceeded. Sizes are
// counted on the plain text, not the styled string, so the cap does not
// depend on how much color a theme uses.
type displayBuffer struct {
	lines []string
	sizes []int
	chars int
	limit int
}

func newDisplayBuffer(limit int) *displayBuffer {
	if limit <= 0 {
		limit = defaultDisplayLimit
	}
	return &displayBuffer{limit: limit}
}

// append adds one rendered line whose plain text is size characters long.
func (d *displayBuffer) append(line string, size int) {
	d.lines = append(d.lines, line)
	d.sizes = append(d.sizes, size)
	d.chars += size
	for d.chars > d.limit && len(d.lines) > 1 {
		d.chars -= d.sizes[0]
		d.lines = d.lines[1:]
		d.sizes = d.sizes[1:]
	}
}

// reset empties the buffer.
func (d *displayBuffer) reset() {
	d.lines = nil
	d.sizes = nil
	d.chars = 0
}

// content joins the lines for the viewport.
func (d *displayBuffer) content() string {
	return strings.Join(d.lines, "\n")
}

// len reports how many lines are held.
func (d *displayBuffer) len() int {
	return len(d.lines)
}
