package engine

// Color identifies a drawing color. The platform layer decides how each
// color is actually rendered (ANSI styles in the terminal backend).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorPink
	ColorPurple
	ColorLightBlue
	ColorWhite
	ColorGray
)

// String returns the color name used in lifecycle notifications.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorPink:
		return "pink"
	case ColorPurple:
		return "purple"
	case ColorLightBlue:
		return "lightblue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
