package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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

// RGB is a 24-bit colour as carried by particles.
type RGB struct {
	R, G, B uint8
}

// palette holds the approximate RGB value of each named colour.
var palette = []struct {
	c   Color
	rgb RGB
}{
	{ColorRed, RGB{205, 0, 0}},
	{ColorGreen, RGB{0, 205, 0}},
	{ColorYellow, RGB{205, 205, 0}},
	{ColorBlue, RGB{0, 0, 238}},
	{ColorMagenta, RGB{205, 0, 205}},
	{ColorCyan, RGB{0, 205, 205}},
	{ColorWhite, RGB{229, 229, 229}},
	{ColorBrightRed, RGB{255, 0, 0}},
	{ColorBrightGreen, RGB{0, 255, 0}},
	{ColorBrightYellow, RGB{255, 255, 0}},
	{ColorBrightBlue, RGB{92, 92, 255}},
	{ColorBrightMagenta, RGB{255, 0, 255}},
	{ColorBrightCyan, RGB{0, 255, 255}},
	{ColorBrightWhite, RGB{255, 255, 255}},
	{ColorOrange, RGB{255, 135, 0}},
	{ColorGray, RGB{138, 138, 138}},
}

// NearestColor maps an RGB value to the closest named colour.
func NearestColor(rgb RGB) Color {
	best := ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr := int(rgb.R) - int(p.rgb.R)
		dg := int(rgb.G) - int(p.rgb.G)
		db := int(rgb.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}
