package sanitizer

import (
	"html/template"
	"strings"
)

// Escape makes user text safe to place inside an HTML body. Nothing is
// removed: markup-like input such as "<Jo>" is shown literally.
func Escape(s string) string {
	return template.HTMLEscapeString(s)
}

// Multiline is Escape with line breaks turned into <br> tags.
func Multiline(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Escape(line)
	}
	return strings.Join(lines, "<br>")
}
