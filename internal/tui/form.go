package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/contact"
)

// fieldLabels are the form labels in focus order.
var fieldLabels = [...]string{"Name:", "Phone:", "Email:", "Address:"}

const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldAddress
	fieldCount
)

// form holds the four contact input fields.
// loaded holds the values last passed to SetInput and shown what the inputs
// displayed for them. An unedited field returns its loaded value, since inputs
// replace tabs and newlines with spaces.
type form struct {
	inputs [fieldCount]textinput.Model
	loaded [fieldCount]string
	shown  [fieldCount]string
}

func newForm() form {
	var f form
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.Width = 30
		f.inputs[i] = ti
	}
	f.inputs[fieldEmail].Placeholder = "optional"
	f.inputs[fieldAddress].Placeholder = "optional"
	return f
}

// Input returns the current field values.
func (f form) Input() contact.Input {
	return contact.Input{
		Name:    f.value(fieldName),
		Phone:   f.value(fieldPhone),
		Email:   f.value(fieldEmail),
		Address: f.value(fieldAddress),
	}
}

// value returns field i, or the loaded value when the field was not edited.
func (f form) value(i int) string {
	v := f.inputs[i].Value()
	if v == f.shown[i] {
		return f.loaded[i]
	}
	return v
}

// Query returns the search text: the name field, or the phone field when the name is empty.
func (f form) Query() string {
	return contact.Query(f.value(fieldName), f.value(fieldPhone))
}

// SetInput fills the fields from in.
func (f form) SetInput(in contact.Input) form {
	for i, v := range [fieldCount]string{in.Name, in.Phone, in.Email, in.Address} {
		f.inputs[i].SetValue(v)
		f.loaded[i] = v
		f.shown[i] = f.inputs[i].Value()
	}
	return f
}

// Reset empties every field.
func (f form) Reset() form {
	return f.SetInput(contact.Input{})
}

// focus gives keyboard focus to field i and blurs the others.
// A negative i blurs every field.
func (f form) focus(i int) (form, tea.Cmd) {
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
			continue
		}
		f.inputs[j].Blur()
	}
	return f, cmd
}

// update forwards msg to field i.
func (f form) update(i int, msg tea.Msg) (form, tea.Cmd) {
	if i < 0 || i >= fieldCount {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return f, cmd
}

// View renders the labeled fields; focused is the field index with focus or -1.
func (f form) View(focused int) string {
	var b strings.Builder
	for i, ti := range f.inputs {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := labelStyle.Render(fieldLabels[i])
		if i == focused {
			label = focusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString(label)
		b.WriteString(ti.View())
	}
	return b.String()
}
