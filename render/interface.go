package render

// Symbol identifies what occupies a cell; the renderer decides how it looks
type Symbol uint8

const (
	SymbolBackground Symbol = iota
	SymbolSnake
	SymbolApple
)

func (s Symbol) String() string {
	switch s {
	case SymbolSnake:
		return "snake"
	case SymbolApple:
		return "apple"
	default:
		return "background"
	}
}

// Renderer is the character display consumed by the game loop
// All calls are synchronous
type Renderer interface {
	// Clear blanks the whole display
	Clear()
	// MoveCursor positions the draw cursor (0-indexed)
	MoveCursor(x, y int)
	HideCursor()
	ShowCursor()
	// Draw writes the symbol at the cursor and advances the cursor one column
	Draw(s Symbol)
	// Flush makes pending draws visible
	Flush()
}
