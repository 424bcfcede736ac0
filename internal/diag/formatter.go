package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	gutter    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	caret     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Formatter renders diagnostics with source code snippets and a caret
// underline beneath the offending span.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string
	color       bool
}

// NewFormatter creates a formatter writing to stderr.
func NewFormatter() *Formatter {
	return &Formatter{
		out:         os.Stderr,
		sourceCache: make(map[string]string),
		color:       true,
	}
}

// NewFormatterTo creates a formatter writing to w with styling disabled.
// Used by tests and non-terminal outputs.
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{
		out:         w,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers in-memory source text for a filename, so snippets
// can be rendered without touching the filesystem. The REPL uses this
// for its synthetic input names.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func (f *Formatter) style(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return s.Render(text)
}

func (f *Formatter) severityStyle(sev Severity) lipgloss.Style {
	switch sev {
	case SeverityWarning:
		return warnStyle
	case SeverityNote:
		return noteStyle
	default:
		return errStyle
	}
}

// Format renders a diagnostic. If source for the span's file cannot be
// found, falls back to a one-line location format.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		}
		f.printFooter(d)
		return
	}

	f.printSnippet(src, d.Span)
	f.printFooter(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	label := severity
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s: %s\n", f.style(f.severityStyle(d.Severity), label), d.Message)
}

// printSnippet prints the source line for the span with a caret
// underline beneath the offending range.
func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span.String())
		return
	}

	lineContent := lines[span.Line-1]
	lineNum := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineNum))

	fmt.Fprintf(f.out, "  %s %s\n", f.style(gutter, pad+"-->"), span.String())
	fmt.Fprintf(f.out, "  %s\n", f.style(gutter, pad+" |"))
	fmt.Fprintf(f.out, "  %s %s\n", f.style(gutter, lineNum+" |"), lineContent)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if span.Column-1+width > len([]rune(lineContent)) {
		width = len([]rune(lineContent)) - (span.Column - 1)
		if width < 1 {
			width = 1
		}
	}
	underline := strings.Repeat(" ", span.Column-1) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, "  %s %s\n", f.style(gutter, pad+" |"), f.style(caret, underline))
}

// printFooter prints notes and help text.
func (f *Formatter) printFooter(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "%s: %s\n", f.style(noteStyle, "help"), d.Help)
	}
}
