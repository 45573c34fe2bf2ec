// Package notify surfaces user-facing notifications (the toast contract of
// the view layer) with styled terminal output.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

type Notifier interface {
	Notify(message string, severity Severity)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Terminal writes one styled line per notification.
type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Notify(message string, severity Severity) {
	style := infoStyle
	switch severity {
	case SeveritySuccess:
		style = successStyle
	case SeverityError:
		style = errorStyle
	}
	fmt.Fprintln(t.out, style.Render(message))
}
