package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/store"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// seqIDs returns an ID generator producing id-1, id-2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newTestStore opens a store in a temp dir holding the given contacts.
func newTestStore(t *testing.T, inputs ...contact.Input) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "contacts.json"), store.WithIDFunc(seqIDs()))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	for _, in := range inputs {
		if _, err := s.Add(in); err != nil {
			t.Fatalf("Add(%+v) error = %v", in, err)
		}
	}
	return s
}

var (
	alice = contact.Input{Name: "Alice", Phone: "555-1234", Email: "alice@example.com"}
	bob   = contact.Input{Name: "Bob", Phone: "555-9999", Address: "Main St"}
	carol = contact.Input{Name: "Carol", Phone: "555-0001"}
)

// Key message shorthands.
var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyAdd      = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyUpdate   = tea.KeyMsg{Type: tea.KeyCtrlU}
	keyDelete   = tea.KeyMsg{Type: tea.KeyCtrlD}
	keySearch   = tea.KeyMsg{Type: tea.KeyCtrlF}
	keyClear    = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyShowAll  = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyQuit     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// runes builds a key message typing s.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update in order, discarding commands.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// fill focuses the form and types the given field values in order.
func fill(t *testing.T, m Model, in contact.Input) Model {
	t.Helper()
	m = send(t, m, keyEsc)
	m, _ = asModel(m.setFocus(FocusName))
	for i, v := range []string{in.Name, in.Phone, in.Email, in.Address} {
		if v != "" {
			m = send(t, m, runes(v))
		}
		if i < fieldCount-1 {
			m = send(t, m, keyTab)
		}
	}
	return m
}

func asModel(tm tea.Model, cmd tea.Cmd) (Model, tea.Cmd) {
	return tm.(Model), cmd
}
