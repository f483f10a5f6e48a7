package app

import "strings"

// highlightFencedCodeInEditorView styles fenced code blocks in the rendered
// editor view. Fence lines get editorFenceLine, lines between fences get
// editorCodeLine, prose is left alone. It only touches the view string, never
// the editor state.
func highlightFencedCodeInEditorView(view string) string {
	if !strings.Contains(view, "```") {
		return view
	}
	lines := strings.Split(view, "\n")
	inFence := false
	for i, line := range lines {
		if strings.Contains(line, "```") {
			lines[i] = editorFenceLine.Render(line)
			inFence = !inFence
			continue
		}
		if inFence {
			lines[i] = editorCodeLine.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
