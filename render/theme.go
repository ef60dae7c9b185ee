package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/config"
)

// Glyph is the resolved appearance of a Symbol
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Palette resolves every Symbol to a Glyph
type Palette [3]Glyph

// NewPalette converts theme names into tcell styles
// Unknown color names fall back to the terminal default
func NewPalette(theme config.Theme) Palette {
	var p Palette
	p[SymbolBackground] = Glyph{
		Rune:  firstRune(theme.BackgroundRune, '.'),
		Style: styleFor(theme.BackgroundColor),
	}
	p[SymbolSnake] = Glyph{
		Rune:  firstRune(theme.SnakeRune, 'o'),
		Style: styleFor(theme.SnakeColor),
	}
	p[SymbolApple] = Glyph{
		Rune:  firstRune(theme.AppleRune, 'x'),
		Style: styleFor(theme.AppleColor),
	}
	return p
}

// Glyph returns the appearance for s
func (p Palette) Glyph(s Symbol) Glyph {
	if int(s) >= len(p) {
		return p[SymbolBackground]
	}
	return p[s]
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}

func styleFor(color string) tcell.Style {
	if color == "" {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.GetColor(color))
}
