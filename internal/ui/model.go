package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashtools/flashlog/internal/filter"
	"github.com/flashtools/flashlog/internal/pipeline"
	"github.com/flashtools/flashlog/internal/record"
	"github.com/flashtools/flashlog/internal/state"
)

const statusTick = time.Second

// chromeHeight is the number of terminal rows used around the viewport:
// header, command bar, and status line.
const chromeHeight = 3

// recordMsg delivers one displayable record from the pipeline's hand-off
// channel through the bubbletea message loop.
type recordMsg struct {
	rec record.Record
}

// statusTickMsg drives the periodic server-status refresh in the header.
type statusTickMsg time.Time

// editField says which input, if any, currently has focus.
type editField int

const (
	editNone editField = iota
	editKeyword
	editExcludes
)

// Model is the root bubbletea model for the viewer.
type Model struct {
	pipe  *pipeline.Pipeline
	store *state.Store

	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	ready  bool

	vp      viewport.Model
	display *displayBuffer
	follow  bool
	shown   int // records rendered since last clear/refilter

	keywordInput  textinput.Model
	excludesInput textinput.Model
	editing       editField

	snapshot state.Snapshot
	showHelp bool
}

// New builds the model over an already-running pipeline.
func New(opts Options) Model {
	keywordInput := textinput.New()
	keywordInput.Placeholder = "substring to show"
	keywordInput.Prompt = "filter: "
	keywordInput.CharLimit = 128

	excludesInput := textinput.New()
	excludesInput.Placeholder = "comma-separated sender substrings"
	excludesInput.Prompt = "exclude: "
	excludesInput.CharLimit = 256
	excludesInput.SetValue(strings.Join(opts.Pipeline.ExcludedSenders(), ", "))

	theme := GetTheme(opts.ThemeName)

	return Model{
		pipe:          opts.Pipeline,
		store:         opts.Store,
		keys:          defaultKeyMap(),
		theme:         theme,
		styles:        theme.Styles(),
		display:       newDisplayBuffer(defaultDisplayLimit),
		follow:        true,
		keywordInput:  keywordInput,
		excludesInput: excludesInput,
		snapshot:      opts.Store.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		listenForRecord(m.pipe.Records()),
		statusTickCmd(),
	)
}

// listenForRecord returns a command that blocks until the pipeline
// forwards a record, then delivers it as a recordMsg. Update re-issues it
// after each delivery, so records arrive one by one in wire order.
func listenForRecord(ch <-chan record.Record) tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-ch
		if !ok {
			return nil
		}
		return recordMsg{rec: rec}
	}
}

func statusTickCmd() tea.Cmd {
	return tea.Tick(statusTick, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
			m.vp.SetContent(m.display.content())
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = max(msg.Height-chromeHeight, 1)
		}
		return m, nil

	case recordMsg:
		m.appendRecord(msg.rec)
		return m, listenForRecord(m.pipe.Records())

	case statusTickMsg:
		m.snapshot = m.store.Snapshot()
		return m, statusTickCmd()

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Keyword):
		m.editing = editKeyword
		m.keywordInput.SetValue(m.pipe.Keyword())
		m.keywordInput.CursorEnd()
		return m, m.keywordInput.Focus()

	case key.Matches(msg, m.keys.Excludes):
		m.editing = editExcludes
		m.excludesInput.SetValue(strings.Join(m.pipe.ExcludedSenders(), ", "))
		m.excludesInput.CursorEnd()
		return m, m.excludesInput.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.clearLog()
		return m, nil

	case key.Matches(msg, m.keys.Refilter):
		m.refilter()
		return m, nil

	case key.Matches(msg, m.keys.Follow):
		m.follow = !m.follow
		if m.follow {
			m.vp.GotoBottom()
		}
		return m, nil
	}

	// Scrolling detaches the view from the tail; follow mode would snap
	// it right back on the next record.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	if !m.vp.AtBottom() {
		m.follow = false
	}
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurInputs()
		m.editing = editNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.editing {
		case editKeyword:
			m.pipe.SetKeyword(m.keywordInput.Value())
		case editExcludes:
			m.pipe.SetExcludedSenders(filter.ParseList(m.excludesInput.Value()))
		}
		m.blurInputs()
		m.editing = editNone
		m.refilter()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.editing {
	case editKeyword:
		m.keywordInput, cmd = m.keywordInput.Update(msg)
	case editExcludes:
		m.excludesInput, cmd = m.excludesInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) blurInputs() {
	m.keywordInput.Blur()
	m.excludesInput.Blur()
}

// appendRecord renders one record into the display, trimming the oldest
// text once the display budget is exceeded.
func (m *Model) appendRecord(rec record.Record) {
	m.display.append(m.renderLine(rec), len(rec.Raw)+1)
	m.shown++
	if !m.ready {
		return
	}
	m.vp.SetContent(m.display.content())
	if m.follow {
		m.vp.GotoBottom()
	}
}

// clearLog discards the buffered history and the rendered text. Filter
// settings survive.
func (m *Model) clearLog() {
	m.pipe.ClearBuffer()
	m.display.reset()
	m.shown = 0
	if m.ready {
		m.vp.SetContent("")
		m.vp.GotoTop()
	}
}

// refilter replays the buffered history through the current filter and
// rebuilds the display from scratch.
func (m *Model) refilter() {
	recs := m.pipe.Refilter()
	m.display.reset()
	m.shown = 0
	for _, rec := range recs {
		m.display.append(m.renderLine(rec), len(rec.Raw)+1)
		m.shown++
	}
	if m.ready {
		m.vp.SetContent(m.display.content())
		m.vp.GotoBottom()
	}
	m.follow = true
}

func (m *Model) renderLine(rec record.Record) string {
	switch rec.Kind {
	case record.KindError:
		return m.styles.ErrorLine.Render(rec.Raw)
	case record.KindComment:
		return m.styles.CommentLine.Render(rec.Raw)
	default:
		return rec.Raw
	}
}
