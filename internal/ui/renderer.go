package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	echoStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Line is one entry of the message log.
type Line struct {
	Text  string
	Style tcell.Style
}

// Renderer handles drawing the message log and prompt to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws as much of the log as fits above a prompt on the bottom row.
// Long lines wrap; the newest lines are always visible.
func (r *Renderer) Render(log []Line, prompt, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	rows := height - 1
	type row struct {
		text  string
		style tcell.Style
	}
	var visible []row
	for i := len(log) - 1; i >= 0 && len(visible) < rows; i-- {
		wrapped := wrap(log[i].Text, width)
		for j := len(wrapped) - 1; j >= 0 && len(visible) < rows; j-- {
			visible = append(visible, row{wrapped[j], log[i].Style})
		}
	}
	for i, rw := range visible {
		r.drawText(0, rows-1-i, width, rw.text, rw.style)
	}

	x := r.drawText(0, height-1, width, prompt, promptStyle)
	x = r.drawText(x, height-1, width, input, textStyle)
	r.screen.ShowCursor(x, height-1)

	r.screen.Show()
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x += w
	}
	return x
}

// wrap splits text into rows no wider than width columns.
func wrap(text string, width int) []string {
	if text == "" || width <= 0 {
		return []string{""}
	}
	var rows []string
	start, col := 0, 0
	for i, ch := range text {
		w := runewidth.RuneWidth(ch)
		if col+w > width {
			rows = append(rows, text[start:i])
			start, col = i, 0
		}
		col += w
	}
	return append(rows, text[start:])
}
