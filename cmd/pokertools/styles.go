package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	mapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	yesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	noStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// row writes a label and value pair.
func row(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s\t%v\n", headerStyle.Render(label), value)
}

func yesNo(b bool) string {
	if b {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}

func footer(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "\n%s\n", footerStyle.Render(fmt.Sprintf(format, args...)))
}
