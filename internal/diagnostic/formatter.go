// Package diagnostic renders a report.Store to a terminal stream: a
// source snippet, an underline caret run, and a colorized severity
// banner. Grounded on the teacher's
// compiler/internal/report/reporter.go printReport/makeParts pair,
// adapted to read a source.Range (with its Ref back-pointer) instead of
// re-reading the file from disk by path, since this module's Range
// already carries the text it points into.
package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/glyphlang/glyph/internal/colors"
	"github.com/glyphlang/glyph/internal/report"
)

var severityColor = map[report.Severity]colors.COLOR{
	report.SeverityError:   colors.RED,
	report.SeverityWarning: colors.YELLOW,
	report.SeverityInfo:    colors.BLUE,
}

var severityLabel = map[report.Severity]string{
	report.SeverityError:   "error",
	report.SeverityWarning: "warning",
	report.SeverityInfo:    "info",
}

// Formatter renders diagnostics from one or more Stores to w.
type Formatter struct {
	w io.Writer
}

// New returns a Formatter writing to w.
func New(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// WriteAll renders every diagnostic in store, in emission order, then a
// trailing pass/fail summary line, mirroring the teacher's
// Reports.DisplayAll + ShowStatus pair.
func (f *Formatter) WriteAll(store *report.Store) {
	for _, d := range store.All() {
		f.writeOne(d)
	}
	f.writeSummary(store)
}

func (f *Formatter) writeOne(d *report.Diagnostic) {
	color := severityColor[d.Severity]
	label := severityLabel[d.Severity]

	fmt.Fprint(f.w, color.Sprintf("[%s %d]: ", label, d.Code))
	fmt.Fprintln(f.w, color.Sprint(d.Message))

	pos := d.Range.StartPos()
	numLen := len(fmt.Sprint(pos.Line))
	fmt.Fprintln(f.w, colors.GREY.Sprintf("%s> [%s:%d:%d]", strings.Repeat("-", numLen+2), srcPath(d), pos.Line, pos.Column))

	snippet, underline := f.snippet(d)
	fmt.Fprint(f.w, snippet)
	if d.Hint != "" {
		fmt.Fprint(f.w, color.Sprint(underline))
		fmt.Fprintln(f.w, colors.YELLOW.Sprintf(" %s", d.Hint))
	} else {
		fmt.Fprintln(f.w, color.Sprint(underline))
	}
}

func srcPath(d *report.Diagnostic) string {
	if d.Range.Src == nil {
		return "<unknown>"
	}
	return d.Range.Src.NormalizedPath()
}

// snippet renders the single source line the diagnostic's start falls
// on, plus a caret-and-tilde underline spanning its Range (clamped to
// that line), matching the teacher's makeParts shape.
func (f *Formatter) snippet(d *report.Diagnostic) (string, string) {
	if d.Range.Src == nil {
		return "", ""
	}
	text := d.Range.Src.Text()
	lines := strings.Split(text, "\n")

	start := d.Range.StartPos()
	end := d.Range.EndPos()
	if start.Line < 1 || start.Line > len(lines) {
		return "", ""
	}
	line := lines[start.Line-1]

	hintLen := 0
	if end.Line == start.Line {
		hintLen = end.Column - start.Column
	} else {
		hintLen = len(line) - start.Column + 1
	}
	if hintLen < 1 {
		hintLen = 1
	}

	lineNumber := fmt.Sprintf("%d | ", start.Line)
	bar := fmt.Sprintf("%s|", strings.Repeat(" ", len(fmt.Sprint(start.Line))+1))
	padding := strings.Repeat(" ", (start.Column-1)+len(lineNumber)-len(bar))

	snippet := colors.GREY.Sprint(bar) + "\n" + colors.GREY.Sprint(lineNumber) + line + "\n" + colors.GREY.Sprint(bar)
	underline := fmt.Sprintf("%s^%s", padding, strings.Repeat("~", hintLen-1))
	return snippet, underline
}

func (f *Formatter) writeSummary(store *report.Store) {
	errCount, warnCount := 0, 0
	for _, d := range store.All() {
		switch d.Severity {
		case report.SeverityError:
			errCount++
		case report.SeverityWarning:
			warnCount++
		}
	}

	color := colors.GREEN
	verdict := "passed"
	if errCount > 0 {
		color = colors.RED
		verdict = "failed"
	}

	summary := fmt.Sprintf("------------- %s ", verdict)
	if warnCount > 0 {
		summary += colors.YELLOW.Sprintf("(%d %s) ", warnCount, plural("warning", warnCount))
	}
	if errCount > 0 {
		summary += colors.RED.Sprintf("%d %s ", errCount, plural("error", errCount))
	}
	summary += "-------------"
	fmt.Fprintln(f.w, color.Sprint(summary))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
