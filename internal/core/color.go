package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is a text attribute applied on top of a color.
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota // emphasised text
	AttrReverse                  // cursor and selection highlight
	AttrFaint                    // flashing removed cells
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
