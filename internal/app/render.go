// render.go implements the debounced, cached markdown preview of the draft.
//
// A preview request bumps renderSeq and waits PreviewDebounce before
// rendering, so a burst of resizes renders once. Results carrying an old
// sequence number are dropped. The last render is cached with the draft and
// width bucket it was made for, so reopening the preview of an unchanged
// draft is instant.
//
// Glamour TermRenderers are cached per (style, width bucket) in a small LRU
// shared by all renders, since building one parses the style JSON.
package app

import (
	"container/list"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// previewCacheEntry is the last completed render and its inputs.
type previewCacheEntry struct {
	raw     string
	width   int
	content string
}

// previewRequestMsg is emitted by the debounce timer.
type previewRequestMsg struct {
	width int
	seq   int
}

// previewResultMsg carries a finished render back to Update.
type previewResultMsg struct {
	width   int
	seq     int
	raw     string
	content string
	err     error
}

type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers kept.
	maxRendererCacheEntries = 8

	// rendererCacheMu guards the cache; renders run on background goroutines.
	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// openPreview switches the pane to the rendered preview.
func (m *Model) openPreview() tea.Cmd {
	m.showPreview = true
	m.editor.Blur()
	m.status = "Preview"
	return m.requestPreview()
}

// closePreview returns to the editor.
func (m *Model) closePreview() {
	m.showPreview = false
	m.rendering = false
	m.editor.Focus()
	m.status = "Editing"
}

// requestPreview shows a cached render when the draft and width are unchanged
// and otherwise schedules a debounced render.
func (m *Model) requestPreview() tea.Cmd {
	raw := m.editor.Value()
	width := renderWidthBucket(m.viewport.Width)
	if entry := m.previewCache; entry.content != "" && entry.raw == raw && entry.width == width {
		m.viewport.SetContent(entry.content)
		m.rendering = false
		return nil
	}
	m.rendering = true
	m.viewport.SetContent(m.spinner.View() + " Rendering...")
	m.renderSeq++
	seq := m.renderSeq
	m.pendingWidth = width
	return tea.Tick(PreviewDebounce, func(time.Time) tea.Msg {
		return previewRequestMsg{width: width, seq: seq}
	})
}

// renderPreviewCmd renders raw on a background goroutine.
func renderPreviewCmd(raw string, width int, style string, seq int) tea.Cmd {
	return func() tea.Msg {
		content, err := renderMarkdown(raw, width, style)
		return previewResultMsg{width: width, seq: seq, raw: raw, content: content, err: err}
	}
}

// renderMarkdown converts markdown to ANSI output wrapped at width.
func renderMarkdown(content string, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(style, width)
	if err != nil {
		return content, err
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content, err
	}
	return out, nil
}

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: resolveGlamourStyle(style), width: width}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}

// resolveGlamourStyle picks the preview style. COMPOSER_GLAMOUR_STYLE wins,
// then the configured style, then GLAMOUR_STYLE, then "dark". Unknown names
// fall back to "dark".
func resolveGlamourStyle(configured string) string {
	candidates := []string{
		os.Getenv("COMPOSER_GLAMOUR_STYLE"),
		configured,
		os.Getenv("GLAMOUR_STYLE"),
	}
	for _, candidate := range candidates {
		style := strings.ToLower(strings.TrimSpace(candidate))
		switch style {
		case "auto", "dark", "light", "notty":
			return style
		}
	}
	return "dark"
}

// glamourStyleOption maps a resolved style name to a renderer option. "auto"
// queries the terminal background, which the fixed styles avoid.
func glamourStyleOption(style string) glamour.TermRendererOption {
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}
