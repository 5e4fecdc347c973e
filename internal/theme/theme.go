package theme

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termsweeper/internal/field"
)

const defaultFile = "default.json"

// SymbolStyle is how one board symbol is drawn.
type SymbolStyle struct {
	Glyph string `json:"glyph" toml:"glyph"` // Single character (e.g., "*")
	Color string `json:"color" toml:"color"` // Hex foreground (e.g., "#FFD700")
}

// Theme maps board symbols to glyphs and colours.
type Theme struct {
	Name    string                 `json:"name" toml:"name"`
	Symbols map[string]SymbolStyle `json:"symbols" toml:"symbols"` // Keyed by SymbolKey
	Cursor  string                 `json:"cursor" toml:"cursor"`   // Cursor background
	Border  string                 `json:"border" toml:"border"`
	Text    string                 `json:"text" toml:"text"`
	Won     string                 `json:"won" toml:"won"`   // Status colour after a win
	Lost    string                 `json:"lost" toml:"lost"` // Status colour after a loss
}

// SymbolKey returns the theme key for a symbol: "hidden", "flag",
// "cleared", "exploded" or the digit of a count.
func SymbolKey(sym field.Symbol) string {
	switch sym {
	case field.Hidden:
		return "hidden"
	case field.Flag:
		return "flag"
	case field.Cleared:
		return "cleared"
	case field.Exploded:
		return "exploded"
	default:
		return strconv.Itoa(sym.Count())
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	th, err := load[Theme](defaultFile)
	if err != nil {
		panic(err)
	}
	return &th
}

// Load returns the built-in theme overlaid with the file at path. An empty
// path returns the built-in theme.
func Load(path string) (*Theme, error) {
	th := Default()
	if path == "" {
		return th, nil
	}

	user, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	th.merge(user)
	return th, nil
}

// merge copies every non-empty value of other onto t.
func (t *Theme) merge(other Theme) {
	if other.Name != "" {
		t.Name = other.Name
	}
	for key, style := range other.Symbols {
		cur := t.Symbols[key]
		if style.Glyph != "" {
			cur.Glyph = style.Glyph
		}
		if style.Color != "" {
			cur.Color = style.Color
		}
		t.Symbols[key] = cur
	}
	setIf(&t.Cursor, other.Cursor)
	setIf(&t.Border, other.Border)
	setIf(&t.Text, other.Text)
	setIf(&t.Won, other.Won)
	setIf(&t.Lost, other.Lost)
}

func setIf(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Glyph returns the character drawn for a symbol.
func (t *Theme) Glyph(sym field.Symbol) rune {
	style, ok := t.Symbols[SymbolKey(sym)]
	if !ok || style.Glyph == "" {
		return sym.Rune()
	}
	return []rune(style.Glyph)[0]
}

// Style returns the tcell style for a symbol.
func (t *Theme) Style(sym field.Symbol) tcell.Style {
	fg := colorOr(t.Symbols[SymbolKey(sym)].Color, tcell.ColorWhite)
	style := tcell.StyleDefault.Foreground(fg)
	if sym == field.Exploded {
		style = style.Bold(true)
	}
	return style
}

// CursorStyle returns the style for the cell under the cursor.
func (t *Theme) CursorStyle(sym field.Symbol) tcell.Style {
	return t.Style(sym).Background(colorOr(t.Cursor, tcell.ColorDarkGray))
}

// BorderStyle returns the style for the board frame and labels.
func (t *Theme) BorderStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(colorOr(t.Border, tcell.ColorGray))
}

// TextStyle returns the style for status and message lines.
func (t *Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(colorOr(t.Text, tcell.ColorWhite))
}

// OutcomeStyle returns the message style after a game ends.
func (t *Theme) OutcomeStyle(won bool) tcell.Style {
	if won {
		return tcell.StyleDefault.Foreground(colorOr(t.Won, tcell.ColorGreen)).Bold(true)
	}
	return tcell.StyleDefault.Foreground(colorOr(t.Lost, tcell.ColorRed)).Bold(true)
}
