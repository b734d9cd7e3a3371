package viewer

import (
	"fmt"
	"math"
	"strings"

	"glsnake/internal/morph"
	"glsnake/internal/snake"
)

// ClassText describes a classification in a few words.
func ClassText(cl snake.Classification) string {
	switch {
	case !cl.Legal:
		return "illegal"
	case cl.Cyclic && cl.HasLastTurn:
		return fmt.Sprintf("cyclic, closes %c", cl.LastTurn.Rune())
	case cl.Cyclic:
		return "cyclic"
	}
	return "open"
}

// Percent renders a progress fraction as a whole percentage.
func Percent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p*100)))
}

// Status is the one-line summary used for the window title.
func Status(c *morph.Controller) string {
	parts := []string{
		c.ModelName(),
		ClassText(c.Classification()),
		Percent(c.Progress()),
	}
	if c.Paused() {
		parts = append(parts, "paused")
	}
	if c.AutoCycle() {
		parts = append(parts, "auto")
	}
	return strings.Join(parts, " | ")
}

// ProgressBar draws p as width cells of '#' and '.'.
func ProgressBar(p float64, width int) string {
	if width <= 0 {
		return ""
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	n := int(math.Round(p * float64(width)))
	return strings.Repeat("#", n) + strings.Repeat(".", width-n)
}
