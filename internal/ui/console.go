package ui

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcaneadventures/internal/console"
	"github.com/samdwyer/arcaneadventures/internal/gamedata"
)

// maxLogLines bounds the message log kept for scrollback.
const maxLogLines = 500

// Console is a console.Console drawn on a tcell screen: a scrolling message
// log with an input line at the bottom.
type Console struct {
	screen   *Screen
	renderer *Renderer
	log      []Line
}

// NewConsole creates a console on the given screen.
func NewConsole(screen *Screen) *Console {
	return &Console{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Announce appends a line to the log and redraws.
func (c *Console) Announce(text string) {
	c.appendLine(text, textStyle)
	c.renderer.Render(c.log, "", "")
}

// AnnounceColor appends a line in the given hex color and redraws.
func (c *Console) AnnounceColor(text, hexColor string) {
	style := textStyle
	if color, err := gamedata.ParseHexColor(hexColor); err == nil {
		style = tcell.StyleDefault.Foreground(color).Bold(true)
	}
	c.appendLine(text, style)
	c.renderer.Render(c.log, "", "")
}

// Prompt shows text on the input line and collects keys until Enter.
// Esc and Ctrl-C return console.ErrInterrupted; a closed screen returns io.EOF.
func (c *Console) Prompt(text string) (string, error) {
	var input []rune
	for {
		c.renderer.Render(c.log, text, string(input))

		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				line := string(input)
				c.appendLine(text+line, echoStyle)
				return line, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", console.ErrInterrupted
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
	}
}

// Lines returns the text of the message log, oldest first.
func (c *Console) Lines() []string {
	out := make([]string, len(c.log))
	for i, l := range c.log {
		out[i] = l.Text
	}
	return out
}

// Close restores the terminal.
func (c *Console) Close() {
	c.screen.Close()
}

func (c *Console) appendLine(text string, style tcell.Style) {
	c.log = append(c.log, Line{Text: text, Style: style})
	if len(c.log) > maxLogLines {
		c.log = c.log[len(c.log)-maxLogLines:]
	}
}

var (
	_ console.Console        = (*Console)(nil)
	_ console.ColorAnnouncer = (*Console)(nil)
)
