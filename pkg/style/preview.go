package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderPreview formats generated file content for display. On a terminal
// the content is shown as a highlighted code block; elsewhere it is returned
// unchanged so it can be redirected to a file.
func RenderPreview(out *os.File, content, lang string) string {
	if !ColorEnabled(out) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(codeBlock(content, lang))
	if err != nil {
		return content
	}
	return rendered
}

// codeBlock wraps content in a fenced markdown block long enough not to
// clash with backticks inside content
func codeBlock(content, lang string) string {
	fence := "```"
	for strings.Contains(content, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + strings.TrimRight(content, "\n") + "\n" + fence + "\n"
}
