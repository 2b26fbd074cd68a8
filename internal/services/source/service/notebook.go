package service

import (
	"encoding/json"
	"strings"
)

type notebook struct {
	Cells []struct {
		CellType string          `json:"cell_type"`
		Source   json.RawMessage `json:"source"`
	} `json:"cells"`
}

// CodeCells reduces a Jupyter notebook to its code cells separated by blank lines
func CodeCells(raw string) (string, bool) {
	var nb notebook
	if err := json.Unmarshal([]byte(raw), &nb); err != nil || nb.Cells == nil {
		return "", false
	}
	var parts []string
	for _, c := range nb.Cells {
		if c.CellType != "code" {
			continue
		}
		src, ok := cellSource(c.Source)
		if !ok {
			return "", false
		}
		if src = strings.TrimRight(src, "\n"); src != "" {
			parts = append(parts, src)
		}
	}
	return strings.Join(parts, "\n\n"), true
}

// cellSource accepts both the list-of-lines and the single string forms
func cellSource(raw json.RawMessage) (string, bool) {
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, ""), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return "", false
}
