package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// printResponse writes the submission success banner: the success line,
// the response JSON, and the closing line, each exactly once.
func printResponse(w io.Writer, v any) error {
	if _, err := fmt.Fprintln(w, successStyle.Render("Got successful response")); err != nil {
		return err
	}
	if err := printJSON(w, v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, doneStyle.Render("Done."))
	return err
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
