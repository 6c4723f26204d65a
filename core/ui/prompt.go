package ui

import (
	"bufio"
	"io"
	"strings"

	"meal-benefit/core/period"
)

// PromptCompetency interactively asks for the competency month, falling
// back to def when the user just presses enter. Invalid input re-prompts
// up to three times before giving up on the default.
func PromptCompetency(in io.Reader, w *Writer, def period.Competency) period.Competency {
	reader := bufio.NewReader(in)

	for attempt := 0; attempt < 3; attempt++ {
		w.Print("Competency month [%s]: ", def.Label())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return def
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		competency, perr := period.ParseCompetency(line)
		if perr == nil {
			return competency
		}
		w.Warning("expected MM/YYYY, e.g. 05/2025")
	}
	return def
}
