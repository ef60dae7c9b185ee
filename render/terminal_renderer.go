package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer draws symbols on a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	palette Palette

	cursorX, cursorY int
	cursorVisible    bool
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		palette: palette,
	}
}

// Clear blanks the screen and homes the cursor
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
	r.MoveCursor(0, 0)
}

// MoveCursor positions the draw cursor
func (r *TerminalRenderer) MoveCursor(x, y int) {
	r.cursorX, r.cursorY = x, y
	if r.cursorVisible {
		r.screen.ShowCursor(x, y)
	}
}

// HideCursor hides the terminal cursor
func (r *TerminalRenderer) HideCursor() {
	r.cursorVisible = false
	r.screen.HideCursor()
}

// ShowCursor shows the terminal cursor at the draw position
func (r *TerminalRenderer) ShowCursor() {
	r.cursorVisible = true
	r.screen.ShowCursor(r.cursorX, r.cursorY)
}

// Draw writes the symbol glyph at the cursor and advances one column
func (r *TerminalRenderer) Draw(s Symbol) {
	g := r.palette.Glyph(s)
	r.screen.SetContent(r.cursorX, r.cursorY, g.Rune, nil, g.Style)
	r.cursorX++
}

// Flush pushes pending cells to the terminal
func (r *TerminalRenderer) Flush() {
	r.screen.Show()
}
