package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// previewWrap is the column at which terminal previews are word-wrapped.
const previewWrap = 100

// Printer writes command results either as status lines for a person or as
// one JSON object for scripts.
type Printer struct {
	w        io.Writer
	errW     io.Writer
	json     bool
	color    bool
	styles   Styles
	warnings []string
}

// Styles holds the lipgloss styles used for human output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Key     lipgloss.Style
}

// newStyles returns colored styles, or plain ones when color is off.
func newStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Error: plain, Warning: plain, Success: plain, Key: plain}
	}
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// NewPrinter creates a Printer writing to writer. jsonMode selects JSON
// output; color enables styled human output.
func NewPrinter(writer io.Writer, jsonMode bool, color bool) *Printer {
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		color:  color,
		styles: newStyles(color),
	}
}

// WithStderr routes human-mode errors and warnings to w.
// JSON-mode errors stay on the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Success writes the result of a run. In JSON mode data is written as one
// object, with any collected warnings under "warnings". In human mode only
// the "message" key, if present, is printed.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		if len(p.warnings) > 0 {
			data["warnings"] = p.warnings
		}
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
	}
	return nil
}

// Error writes err. JSON mode emits {"error": "...", "code": N} on the main
// writer; human mode prints "Error: ..." on the error writer.
// Errors without an ExitError in their chain are reported as user errors.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn prints "Warning: ..." on the error writer. In JSON mode the message
// is held back and attached to the next Success payload.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		p.warnings = append(p.warnings, msg)
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Status prints a progress line. No-op in JSON mode.
func (p *Printer) Status(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.w, format+"\n", args...))
}

// Field prints "Key: value" with the key styled. No-op in JSON mode.
func (p *Printer) Field(key string, value string) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Markdown renders a Markdown document for the terminal.
// Colored output gets glamour's auto-detected style; otherwise the plain
// notty style keeps escape sequences out of pipes and files.
// No-op in JSON mode.
func (p *Printer) Markdown(doc string) error {
	if p.json {
		return nil
	}

	style := glamour.WithStandardStyle("notty")
	if p.color {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(previewWrap))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	mustWrite(fmt.Fprint(p.w, rendered))
	return nil
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns {"error": message, "code": code} as JSON bytes.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics on write failure to stdout, stderr or a buffer.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
