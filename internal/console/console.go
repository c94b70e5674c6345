// Package console defines the text I/O boundary the game talks to.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInterrupted is returned by Prompt when the player aborts input (Esc, Ctrl-C).
var ErrInterrupted = errors.New("console: interrupted")

// Console is the collaborator the game prompts for input and reports outcomes to.
type Console interface {
	// Prompt shows text and blocks until the player enters a line.
	// The line is returned verbatim; callers trim and parse.
	Prompt(text string) (string, error)
	// Announce writes a status or narrative line.
	Announce(text string)
}

// ColorAnnouncer is implemented by consoles that can render colored lines.
type ColorAnnouncer interface {
	AnnounceColor(text, hexColor string)
}

// AnnounceColor writes text in the given color when c supports it, plain otherwise.
func AnnounceColor(c Console, text, hexColor string) {
	if ca, ok := c.(ColorAnnouncer); ok && hexColor != "" {
		ca.AnnounceColor(text, hexColor)
		return
	}
	c.Announce(text)
}

// Line is a Console over a plain reader and writer, typically stdin and stdout.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine creates a line console.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Prompt writes text without a newline and reads one line.
// A final line without a trailing newline is still returned; io.EOF is
// reported only when there is nothing left to read.
func (l *Line) Prompt(text string) (string, error) {
	fmt.Fprint(l.w, text)
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Announce writes text followed by a newline.
func (l *Line) Announce(text string) {
	fmt.Fprintln(l.w, text)
}
