package selection

import (
	"fmt"
	"strings"
)

// ExportText renders the selection as plain text, one image per line.
func (s *Selection) ExportText() string {
	lines := []string{fmt.Sprintf("# %d images", len(s.Entries))}
	for _, e := range s.Entries {
		line := fmt.Sprintf("%d. %s", e.Order, e.Image.Name)
		if e.Image.Description != "" {
			line += " (" + e.Image.Description + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Word returns the letters spelled by the selection.
func (s *Selection) Word() string {
	var sb strings.Builder
	for _, e := range s.Entries {
		sb.WriteString(e.Image.Letter)
	}
	return sb.String()
}
