package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/config"
)

// Options carries what the caller knows about the message being composed.
type Options struct {
	// Target holds the stream/topic or private recipients of the message.
	Target compose.PlaceholderOptions
	// Text is the initial draft.
	Text string
	// Directory resolves recipient emails to names; nil shows raw emails.
	Directory compose.Directory
}

// Model holds the Bubble Tea state for the compose box.
type Model struct {
	cfg config.Config

	// Compose box
	editor  textarea.Model
	surface *textareaSurface
	engine  *compose.Engine
	sizer   *textareaAutosizer
	size    compose.SizeMode

	// Message target
	target      compose.PlaceholderOptions
	directory   compose.Directory
	printer     *message.Printer
	placeholder string
	direction   compose.Direction

	// Insert prompt
	prompt     textinput.Model
	showPrompt bool

	// Markdown preview
	viewport     viewport.Model
	showPreview  bool
	spinner      spinner.Model
	rendering    bool
	renderSeq    int
	pendingWidth int
	previewCache previewCacheEntry

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string

	showHelp bool
	status   string
	width    int
	height   int

	sent string
}

// New prepares the compose box for cfg and opts.
func New(cfg config.Config, opts Options) *Model {
	m := &Model{
		cfg:       cfg,
		target:    opts.Target,
		directory: opts.Directory,
		printer:   message.NewPrinter(cfg.LanguageTag()),
		status:    "Ready",
	}

	m.editor = textarea.New()
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	applyEditorTheme(&m.editor)

	m.surface = newTextareaSurface(&m.editor)
	m.sizer = &textareaAutosizer{
		editor:  &m.editor,
		minRows: cfg.AutosizeMinRows,
		maxRows: cfg.AutosizeMaxRows,
	}
	engineOpts := []compose.Option{compose.WithAutosizer(m.sizer)}
	if !cfg.UseNativeInsert() {
		engineOpts = append(engineOpts, compose.WithSplice())
	}
	m.engine = compose.NewEngine(m.surface, engineOpts...)

	m.placeholder = compose.Placeholder(m.target, m.directory, m.printer)
	m.editor.Placeholder = m.placeholder

	if opts.Text != "" {
		m.surface.SetValue(editorText(opts.Text))
	}
	m.surface.Focus()
	m.engine.Autosize(m.size)
	m.refreshDirection()

	m.prompt = textinput.New()
	m.prompt.Prompt = "Insert: "
	m.prompt.Placeholder = "markdown, or a recipient email"
	m.prompt.CharLimit = InputCharLimit

	m.viewport = viewport.New(0, 0)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Line

	m.loadKeybindings(cfg)
	appLog.Debug("compose box ready", "strategy", m.engine.Strategy(), "placeholder", m.placeholder)
	return m
}

// Init starts the cursor blink and the spinner used while rendering.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case previewRequestMsg:
		return m.handlePreviewRequest(msg)
	case previewResultMsg:
		return m.handlePreviewResult(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.showPrompt {
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// Sent returns the draft and true if the user sent the message.
func (m *Model) Sent() (string, bool) {
	return m.sent, m.sent != ""
}

// Engine exposes the compose engine bound to the editor.
func (m *Model) Engine() *compose.Engine {
	return m.engine
}

// send keeps a non-empty draft as the result and quits.
func (m *Model) send() (tea.Model, tea.Cmd) {
	value := m.editor.Value()
	if strings.TrimSpace(value) == "" {
		m.status = "Nothing to send"
		return m, nil
	}
	m.sent = value
	appLog.Info("message sent", "runes", len([]rune(value)), "type", m.target.MessageType)
	return m, tea.Quit
}

// afterEdit refreshes the state derived from the draft after the user typed.
func (m *Model) afterEdit() {
	m.engine.Autosize(m.size)
	m.refreshDirection()
}

func (m *Model) refreshDirection() {
	m.direction = compose.DetectDirection(m.editor.Value())
}
