package board

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// CastleDirections lists the directions in FEN order (KQkq).
var CastleDirections = []CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

var (
	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}
	symbolCastle = [4 + 1]rune{
		CastleDirectionWhiteRight: 'K',
		CastleDirectionWhiteLeft:  'Q',
		CastleDirectionBlackRight: 'k',
		CastleDirectionBlackLeft:  'q',
	}
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func castleDirectionFromSymbol(r rune) (CastleDirection, bool) {
	for _, d := range CastleDirections {
		if symbolCastle[d] == r {
			return d, true
		}
	}
	return CastleDirectionUnknown, false
}

// CastleRights holds one availability flag per CastleDirection.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var s []rune
	for _, d := range CastleDirections {
		if c.IsAllowed(d) {
			s = append(s, symbolCastle[d])
		}
	}
	return string(s)
}
