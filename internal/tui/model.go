// Package tui implements the interactive contact manager: a contact list,
// a four-field form and a notification line, driving a ContactStore.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/store"
)

// ContactStore is the data layer the UI drives.
type ContactStore interface {
	Contacts() []contact.Contact
	Add(in contact.Input) (contact.Contact, error)
	Update(id string, in contact.Input) (contact.Contact, error)
	Delete(id string) error
	Search(query string) ([]contact.Contact, bool)
}

// Title is the heading shown above the list.
const Title = "Contact Management System"

// Focus identifies which widget receives typed keys.
type Focus int

const (
	FocusList Focus = iota
	FocusName
	FocusPhone
	FocusEmail
	FocusAddress
	focusCount
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBrowse        Mode = iota // List and form are active.
	ModeConfirmDelete             // Waiting for y/n on a delete.
)

// Model is the root Bubble Tea model for the contact manager.
type Model struct {
	store   ContactStore
	list    listState
	form    form
	focus   Focus
	mode    Mode
	confirm confirmState
	notice  Notice
	keys    keyMap
	help    help.Model
	width   int
	height  int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithNotice sets the notice shown when the program starts, such as a load error.
func WithNotice(n Notice) ModelOption {
	return func(m *Model) {
		m.notice = n
	}
}

// NewModel creates a Model showing every contact in s with the list focused.
func NewModel(s ContactStore, opts ...ModelOption) Model {
	m := Model{
		store: s,
		list:  newListState(s.Contacts()),
		form:  newForm(),
		focus: FocusList,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blink for text fields.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeConfirmDelete {
			return m.handleConfirmKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(m.fieldIndex(), msg)
	return m, cmd
}

// handleKey processes key messages in browse mode. Global actions are
// checked first; remaining keys go to the list or the focused field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Add):
		return m.add(), nil
	case key.Matches(msg, m.keys.Update):
		return m.update(), nil
	case key.Matches(msg, m.keys.Delete):
		return m.requestDelete(), nil
	case key.Matches(msg, m.keys.Search):
		return m.search(), nil
	case key.Matches(msg, m.keys.Clear):
		return m.clearDisplay(), nil
	case key.Matches(msg, m.keys.ShowAll):
		m.list = m.list.setRows(m.store.Contacts(), false)
		m.notice = Notice{}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.form = m.form.Reset()
		m.notice = Notice{}
		return m, nil
	}

	if m.focus != FocusList {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(m.fieldIndex(), msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.list = m.list.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list = m.list.move(1)
	case key.Matches(msg, m.keys.Select):
		if c, ok := m.list.Selected(); ok {
			m.form = m.form.SetInput(c.Input())
			return m.setFocus(FocusName)
		}
	}
	return m, nil
}

// handleConfirmKey resolves a pending delete.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeBrowse
		return m.delete(m.confirm.id), nil
	case "n", "N", "esc":
		m.mode = ModeBrowse
		m.notice = Notice{Kind: NoticeInfo, Text: MsgCancelled}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// setFocus moves keyboard focus to f.
func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	m.form, cmd = m.form.focus(m.fieldIndex())
	return m, cmd
}

// fieldIndex returns the form field index for the current focus, or -1 for the list.
func (m Model) fieldIndex() int {
	if m.focus == FocusList {
		return -1
	}
	return int(m.focus - FocusName)
}

func (m Model) add() Model {
	c, err := m.store.Add(m.form.Input())
	if err != nil && !errors.Is(err, store.ErrWrite) {
		m.notice = ErrorNotice(err, "add")
		return m
	}
	m.form = m.form.Reset()
	m.list = m.list.setRows(m.store.Contacts(), false).selectID(c.ID)
	m.notice = Notice{Kind: NoticeSuccess, Text: MsgAdded}
	if err != nil {
		m.notice = ErrorNotice(err, "add")
	}
	return m
}

func (m Model) update() Model {
	c, err := m.store.Update(m.list.SelectedID(), m.form.Input())
	if err != nil && !errors.Is(err, store.ErrWrite) {
		m.notice = ErrorNotice(err, "update")
		if errors.Is(err, store.ErrNotFound) {
			m.list = m.list.setRows(m.store.Contacts(), false)
		}
		return m
	}
	m.form = m.form.Reset()
	m.list = m.list.setRows(m.store.Contacts(), false).selectID(c.ID)
	m.notice = Notice{Kind: NoticeSuccess, Text: MsgUpdated}
	if err != nil {
		m.notice = ErrorNotice(err, "update")
	}
	return m
}

// requestDelete opens the confirmation prompt for the selected row.
func (m Model) requestDelete() Model {
	c, ok := m.list.Selected()
	if !ok {
		m.notice = ErrorNotice(store.ErrNoSelection, "delete")
		return m
	}
	m.confirm = newConfirmState(c)
	m.mode = ModeConfirmDelete
	m.notice = Notice{}
	return m
}

func (m Model) delete(id string) Model {
	err := m.store.Delete(id)
	if err != nil && !errors.Is(err, store.ErrWrite) {
		m.notice = ErrorNotice(err, "delete")
		if errors.Is(err, store.ErrNotFound) {
			m.list = m.list.setRows(m.store.Contacts(), false)
		}
		return m
	}
	m.list = m.list.setRows(m.store.Contacts(), false)
	m.notice = Notice{Kind: NoticeSuccess, Text: MsgDeleted}
	if err != nil {
		m.notice = ErrorNotice(err, "delete")
	}
	return m
}

// search narrows the list to matches, or reports no results and shows everything.
func (m Model) search() Model {
	results, found := m.store.Search(m.form.Query())
	if !found {
		m.list = m.list.setRows(m.store.Contacts(), false)
		m.notice = Notice{Kind: NoticeInfo, Text: MsgNoResults}
		return m
	}
	m.list = m.list.setRows(results, true)
	m.notice = Notice{}
	return m
}

// clearDisplay empties the list view without touching the store.
func (m Model) clearDisplay() Model {
	m.list = m.list.setRows(nil, false)
	m.notice = Notice{Kind: NoticeInfo, Text: MsgCleared}
	return m
}

// View renders the title, list, form or confirm prompt, notice and help bar.
func (m Model) View() string {
	border := UnfocusedBorder()
	if m.focus == FocusList && m.mode == ModeBrowse {
		border = FocusedBorder()
	}
	listBox := border.Width(listWidth).Render(m.list.View())

	total := len(m.store.Contacts())
	status := mutedText.Render(m.list.Status(total))

	var body string
	if m.mode == ModeConfirmDelete {
		body = m.confirm.View()
	} else {
		body = m.form.View(m.fieldIndex())
	}

	sections := []string{
		titleStyle.Render(Title),
		listBox,
		status,
		"",
		body,
		"",
		m.notice.View(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
