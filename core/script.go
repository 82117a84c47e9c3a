package core

import (
	"fmt"
	"strings"
)

// ParseScript splits a saved script into its recorded lines. Rows are
// separated by carriage returns only; stray line feeds are tolerated.
func ParseScript(data []byte) []string {
	var lines []string
	for _, row := range strings.Split(string(data), "\r") {
		row = strings.Trim(row, "\n")
		if strings.TrimSpace(row) != "" {
			lines = append(lines, row)
		}
	}
	return lines
}

// Replay feeds recorded lines through the dispatch loop exactly as if they
// had been typed, echoing each one after the prompt.
func (s *Shell) Replay(lines []string) error {
	for _, line := range lines {
		fmt.Fprintf(s.Session.Stdout(), "%s%s\n", s.Prompt(), line)
		quit, err := s.Execute(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}
