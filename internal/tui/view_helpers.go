package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "────────────────────────────────"

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max cells, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(v) <= max {
		return v
	}
	limit, tail := max-3, "..."
	if max <= 3 {
		limit, tail = max, ""
	}
	var b strings.Builder
	for _, r := range v {
		if lipgloss.Width(b.String()+string(r)) > limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + tail
}

// fitLines fits every line to width and keeps at most height lines.
func fitLines(lines []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	out := make([]string, 0, min(len(lines), height))
	for _, line := range lines {
		if len(out) == height {
			break
		}
		out = append(out, fitText(line, width))
	}
	return out
}

func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}

func menuLines(items []string, cursor int) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == cursor {
			lines[i] = cursorStyle.Render("> " + item)
			continue
		}
		lines[i] = "  " + item
	}
	return lines
}
