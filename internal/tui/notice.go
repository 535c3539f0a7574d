package tui

import (
	"errors"
	"fmt"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/store"
)

// NoticeKind classifies a notification shown under the form.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a single user-facing notification.
type Notice struct {
	Kind NoticeKind
	Text string
}

// User-facing message texts.
const (
	MsgAdded      = "Contact Added Successfully"
	MsgUpdated    = "Contact Updated Successfully"
	MsgDeleted    = "Contact Deleted Successfully"
	MsgInvalid    = "Name and Phone Number are required! Email must be valid if provided."
	MsgNoResults  = "No contacts found for the given query."
	MsgCorrupted  = "Error reading contacts file. The file format may be corrupted."
	MsgStale      = "The selected contact no longer exists. Showing all contacts."
	MsgCleared    = "List cleared. Press ^r to show all contacts."
	MsgCancelled  = "Delete cancelled."
	msgSelectWant = "Please select a contact to %s!"
	msgSaveFailed = "Could not save contacts to file: %v"
	msgReadFailed = "Error reading contacts file: %v"
)

// ErrorNotice maps a store or validation error to a notice.
// action names the attempted operation ("update", "delete") for selection errors.
func ErrorNotice(err error, action string) Notice {
	switch {
	case err == nil:
		return Notice{}
	case errors.Is(err, contact.ErrValidation):
		return Notice{Kind: NoticeWarning, Text: MsgInvalid}
	case errors.Is(err, store.ErrNoSelection):
		return Notice{Kind: NoticeWarning, Text: fmt.Sprintf(msgSelectWant, action)}
	case errors.Is(err, store.ErrNotFound):
		return Notice{Kind: NoticeWarning, Text: MsgStale}
	case errors.Is(err, store.ErrCorrupt):
		return Notice{Kind: NoticeError, Text: MsgCorrupted}
	case errors.Is(err, store.ErrLoad):
		return Notice{Kind: NoticeError, Text: fmt.Sprintf(msgReadFailed, err)}
	case errors.Is(err, store.ErrWrite):
		return Notice{Kind: NoticeError, Text: fmt.Sprintf(msgSaveFailed, err)}
	default:
		return Notice{Kind: NoticeError, Text: err.Error()}
	}
}

// View renders the notice, or an empty line when there is none.
func (n Notice) View() string {
	if n.Kind == NoticeNone || n.Text == "" {
		return ""
	}
	return noticeStyle(n.Kind).Render(n.Text)
}
