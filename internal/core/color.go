package core

// Color represents a foreground color for a screen cell.
// The platform maps these onto terminal or RGBA colors.
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
	ColorBrown
)

// ParseHexColor maps a #RRGGBB item color onto the nearest palette entry.
// Unparseable input yields ColorDefault.
func ParseHexColor(hex string) Color {
	r, g, b, ok := HexRGB(hex)
	if !ok {
		return ColorDefault
	}
	best, bestD := ColorDefault, 1<<31-1
	for c, rgb := range Palette {
		if c == ColorDefault {
			continue
		}
		dr, dg, db := int(r)-int(rgb[0]), int(g)-int(rgb[1]), int(b)-int(rgb[2])
		d := dr*dr + dg*dg + db*db
		if d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

// HexRGB parses #RRGGBB.
func HexRGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[1+2*i])
		lo, ok2 := hexDigit(hex[2+2*i])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Palette holds the RGB value of every named color.
var Palette = map[Color][3]uint8{
	ColorDefault:       {220, 220, 220},
	ColorRed:           {205, 49, 49},
	ColorGreen:         {13, 188, 121},
	ColorYellow:        {229, 229, 16},
	ColorBlue:          {36, 114, 200},
	ColorMagenta:       {188, 63, 188},
	ColorCyan:          {17, 168, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {241, 76, 76},
	ColorBrightGreen:   {35, 209, 139},
	ColorBrightYellow:  {245, 245, 67},
	ColorBrightBlue:    {59, 142, 234},
	ColorBrightMagenta: {214, 112, 214},
	ColorBrightCyan:    {41, 184, 219},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 140, 0},
	ColorGray:          {128, 128, 128},
	ColorBrown:         {139, 90, 43},
}
