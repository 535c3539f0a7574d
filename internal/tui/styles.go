package tui

import "github.com/charmbracelet/lipgloss"

// listWidth is the inner width of the contact list box.
const listWidth = 40

// labelWidth aligns the form field labels.
const labelWidth = 9

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "43"}).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Width(labelWidth)

	focusedLabelStyle = labelStyle.
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	confirmStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}).
			Padding(0, 1)
)

// Notice colors indexed by kind: info=blue, success=green, warning=yellow, error=red.
var noticeColors = map[NoticeKind]lipgloss.AdaptiveColor{
	NoticeInfo:    {Light: "4", Dark: "12"},
	NoticeSuccess: {Light: "2", Dark: "10"},
	NoticeWarning: {Light: "3", Dark: "11"},
	NoticeError:   {Light: "1", Dark: "9"},
}

// noticeStyle returns the style used to render a notice of the given kind.
func noticeStyle(kind NoticeKind) lipgloss.Style {
	c, ok := noticeColors[kind]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c).Bold(kind == NoticeError)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}
