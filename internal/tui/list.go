package tui

import (
	"fmt"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// defaultListHeight is the number of rows visible at once.
const defaultListHeight = 10

// listState holds the displayed rows, which may be the full collection, a
// search result or nothing after a clear. Rows carry IDs so the selection
// stays bound to a record whatever subset is shown.
type listState struct {
	rows     []contact.Contact
	cursor   int
	offset   int
	height   int
	filtered bool
}

func newListState(rows []contact.Contact) listState {
	ls := listState{height: defaultListHeight}
	return ls.setRows(rows, false)
}

// setRows replaces the displayed rows and resets the cursor to the top.
func (ls listState) setRows(rows []contact.Contact, filtered bool) listState {
	ls.rows = append([]contact.Contact(nil), rows...)
	ls.filtered = filtered
	ls.cursor = 0
	ls.offset = 0
	return ls
}

// selectID moves the cursor to the row with the given ID, if shown.
func (ls listState) selectID(id string) listState {
	for i, c := range ls.rows {
		if c.ID == id {
			ls.cursor = i
			return ls.scroll()
		}
	}
	return ls
}

// move shifts the cursor by delta, wrapping at both ends.
func (ls listState) move(delta int) listState {
	if len(ls.rows) == 0 {
		return ls
	}
	ls.cursor = (ls.cursor + delta) % len(ls.rows)
	if ls.cursor < 0 {
		ls.cursor += len(ls.rows)
	}
	return ls.scroll()
}

// scroll keeps the cursor inside the visible window.
func (ls listState) scroll() listState {
	if ls.cursor < ls.offset {
		ls.offset = ls.cursor
	}
	if ls.cursor >= ls.offset+ls.height {
		ls.offset = ls.cursor - ls.height + 1
	}
	return ls
}

// Selected returns the contact under the cursor.
func (ls listState) Selected() (contact.Contact, bool) {
	if ls.cursor < 0 || ls.cursor >= len(ls.rows) {
		return contact.Contact{}, false
	}
	return ls.rows[ls.cursor], true
}

// SelectedID returns the ID under the cursor, or "" when nothing is shown.
func (ls listState) SelectedID() string {
	c, _ := ls.Selected()
	return c.ID
}

// View renders the visible window of "name - phone" rows.
func (ls listState) View() string {
	if len(ls.rows) == 0 {
		lines := []string{mutedText.Render("No contacts to display")}
		for len(lines) < ls.height {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	end := ls.offset + ls.height
	if end > len(ls.rows) {
		end = len(ls.rows)
	}

	lines := make([]string, 0, ls.height)
	for i := ls.offset; i < end; i++ {
		prefix := "  "
		if i == ls.cursor {
			prefix = CursorMarker
		}
		lines = append(lines, truncate(prefix+ls.rows[i].Summary(), listWidth))
	}
	for len(lines) < ls.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Status describes what the list currently shows.
func (ls listState) Status(total int) string {
	if ls.filtered {
		return fmt.Sprintf("%d of %d contacts match", len(ls.rows), total)
	}
	if len(ls.rows) == 0 && total > 0 {
		return fmt.Sprintf("%d contacts hidden", total)
	}
	return fmt.Sprintf("%d contacts", total)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
