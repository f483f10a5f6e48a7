package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSpinnerTick advances the spinner and, while a preview is rendering,
// shows it in the viewport.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	if m.rendering {
		m.viewport.SetContent(m.spinner.View() + " Rendering...")
	}
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout(m.calculateLayout())
	if m.showPreview {
		return m, m.requestPreview()
	}
	return m, nil
}

// handlePreviewRequest starts the render once the debounce delay has passed,
// unless a newer request superseded this one.
func (m *Model) handlePreviewRequest(msg previewRequestMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.renderSeq || msg.width != m.pendingWidth || !m.showPreview {
		return m, nil
	}
	return m, renderPreviewCmd(m.editor.Value(), msg.width, m.cfg.GlamourStyle, msg.seq)
}

// handlePreviewResult caches a finished render and shows it if it is still
// the latest one for the current width.
func (m *Model) handlePreviewResult(msg previewResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		appLog.Error("render preview", "seq", msg.seq, "error", msg.err)
		if msg.seq == m.renderSeq {
			m.viewport.SetContent(msg.raw)
			m.status = "Preview render failed"
			m.rendering = false
		}
		return m, nil
	}

	m.previewCache = previewCacheEntry{raw: msg.raw, width: msg.width, content: msg.content}

	if msg.seq != m.renderSeq {
		return m, nil
	}
	if msg.width == renderWidthBucket(m.viewport.Width) {
		m.viewport.SetContent(msg.content)
		m.viewport.GotoTop()
		m.rendering = false
	}
	return m, nil
}
