package board

// Color is stored in the lowest bit of a Cell.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
)

func ColorFromWhite(white bool) Color {
	if white {
		return ColorWhite
	}
	return ColorBlack
}

func (c Color) IsWhite() bool {
	return c == ColorWhite
}

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return ""
	}
}

func (c Color) Opposite() Color {
	return c ^ 1
}
