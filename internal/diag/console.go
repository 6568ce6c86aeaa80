package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tay10r/pathway/internal/token"
)

// ConsoleSink renders diagnostics as text with a caret-underlined source
// excerpt: `path:line:col[ to line:col]: severity:` followed by the
// offending source lines with the span underlined in the severity color.
type ConsoleSink struct {
	w           io.Writer
	colorForced *bool // nil = follow color.NoColor (set when stdout is not a terminal)

	fileStack []consoleFile
}

type consoleFile struct {
	path string
	data []byte
}

// NewConsoleSink creates a ConsoleSink writing to w. With forceColor nil,
// color follows fatih/color's global NoColor setting, which depends on
// whether stdout (not w) is a terminal and on NO_COLOR; pass forceColor
// to override (true/false).
func NewConsoleSink(w io.Writer, forceColor *bool) *ConsoleSink {
	return &ConsoleSink{w: w, colorForced: forceColor}
}

func (c *ConsoleSink) BeginFile(path string, data []byte) {
	c.fileStack = append(c.fileStack, consoleFile{path: path, data: data})
}

func (c *ConsoleSink) EndFile() {
	if len(c.fileStack) == 0 {
		return
	}
	c.fileStack = c.fileStack[:len(c.fileStack)-1]
}

func (c *ConsoleSink) colorEnabled() bool {
	if c.colorForced != nil {
		return *c.colorForced
	}
	return !color.NoColor
}

func (c *ConsoleSink) Observe(d Diag) {
	if len(c.fileStack) == 0 {
		fmt.Fprintf(c.w, "<no file>: %s: %s\n", d.Severity(), d.Message)
		return
	}

	top := c.fileStack[len(c.fileStack)-1]
	loc := d.Location

	bold := color.New(color.Bold)
	sevColor := color.New(color.Bold, color.FgRed)
	if !c.colorEnabled() {
		bold.DisableColor()
		sevColor.DisableColor()
	}

	bold.Fprintf(c.w, "%s:%s: ", top.path, loc.String())
	sevColor.Fprintf(c.w, "%s:", d.Severity())
	fmt.Fprintln(c.w)

	for line := loc.FirstLine; line <= loc.LastLine; line++ {
		lineView := GetLineView(line, top.data)
		clipped := GetClippedLocation(line, top.data, loc)
		indent := asIndent(clipped.Index, lineView)

		fmt.Fprintf(c.w, " %d | %s", line, lineView[:min(clipped.Index, len(lineView))])
		sevColor.Fprint(c.w, safeSlice(lineView, clipped.Index, clipped.Index+clipped.Length))
		fmt.Fprintln(c.w, safeSlice(lineView, clipped.Index+clipped.Length, len(lineView)))

		fmt.Fprintf(c.w, " %s | %s", asSpace(line), indent)
		sevColor.Fprintln(c.w, strings.Repeat("~", clipped.Length))

		if line != loc.FirstLine {
			continue
		}
		fmt.Fprintf(c.w, " %s | %s%s\n", asSpace(line), indent, d.Message)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func safeSlice(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from > to {
		return ""
	}
	return s[from:to]
}

func asSpace(lineNumber int) string {
	return strings.Repeat(" ", len(fmt.Sprintf("%d", lineNumber)))
}

func asIndent(length int, data string) string {
	var b strings.Builder
	for i := 0; i < length && i < len(data); i++ {
		if data[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// GetLineView returns the n-th (1-based) '\n'-delimited line of data,
// excluding the terminator, or "" if data has fewer than n lines.
func GetLineView(line int, data []byte) string {
	lineStart := 0
	currentLine := 1

	for i := 0; i < len(data) && currentLine != line; i++ {
		if data[i] == '\n' {
			lineStart = i + 1
			currentLine++
		}
	}

	if currentLine != line {
		return ""
	}

	length := len(data) - lineStart
	for i := lineStart; i < len(data); i++ {
		if data[i] == '\r' || data[i] == '\n' {
			length = i - lineStart
			break
		}
	}

	return string(data[lineStart : lineStart+length])
}

// ClippedLineRange is a byte index/length pair into a single line's text.
type ClippedLineRange struct {
	Index  int
	Length int
}

// GetClippedLocation restricts loc to a single line, returning the
// index/length of the covered portion of that line's text: the full span
// on the first line from column through end of line, the whole line in
// the middle, and column 1 through the end column on the last line.
func GetClippedLocation(line int, data []byte, loc token.Location) ClippedLineRange {
	if line < loc.FirstLine || line > loc.LastLine {
		return ClippedLineRange{}
	}

	lineView := GetLineView(line, data)

	if line != loc.FirstLine && line != loc.LastLine {
		return ClippedLineRange{Index: 0, Length: len(lineView)}
	}

	if loc.FirstLine == loc.LastLine {
		index := loc.FirstColumn - 1
		length := (loc.LastColumn - 1 - index) + 1
		if index > len(lineView) || index+length > len(lineView) {
			return ClippedLineRange{}
		}
		return ClippedLineRange{Index: index, Length: length}
	}

	if line == loc.FirstLine {
		index := loc.FirstColumn - 1
		if index > len(lineView) {
			return ClippedLineRange{}
		}
		return ClippedLineRange{Index: index, Length: len(lineView) - index}
	}

	// line == loc.LastLine
	length := loc.LastColumn
	if length > len(lineView) {
		return ClippedLineRange{}
	}
	return ClippedLineRange{Index: 0, Length: length}
}
