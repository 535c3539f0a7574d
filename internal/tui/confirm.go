package tui

import (
	"fmt"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

// confirmState holds the record awaiting delete confirmation.
// The ID is frozen when the prompt opens.
type confirmState struct {
	id      string
	summary string
}

func newConfirmState(c contact.Contact) confirmState {
	return confirmState{id: c.ID, summary: c.Summary()}
}

// View renders the delete confirmation prompt.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete %s?\n", cs.summary)
	b.WriteString("\n  This removes the contact and saves the file.")
	b.WriteString("\n\n  [y] Delete   [n/Esc] Cancel")
	return confirmStyle.Render(b.String())
}
