package animate

import (
	"fmt"
	"strings"
)

// DefaultBarWidth is the number of cells in the progress bar.
const DefaultBarWidth = 30

const (
	barDone = "#"
	barTodo = "."
)

// ProgressBar renders "[###...] P%" for done out of total.
// filled = floor(done/total·width) and P = floor(done/total·100).
// total ≤ 0 renders an empty bar at 0%; done is clamped to [0, total].
func ProgressBar(done, total, width int) string {
	if width < 0 {
		width = 0
	}
	var frac float64
	if total > 0 {
		frac = float64(min(max(done, 0), total)) / float64(total)
	}
	filled := int(frac * float64(width))

	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat(barDone, filled),
		strings.Repeat(barTodo, width-filled),
		int(frac*100))
}
