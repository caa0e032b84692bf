package position

import "fmt"

const (
	// PaddedWidth and PaddedHeight describe the 10x12 mailbox: a one cell
	// border on each side and a two row border above and below the board.
	PaddedWidth  Padded = 10
	PaddedHeight Padded = 12
	PaddedCells         = PaddedWidth * PaddedHeight

	// MaxOffset bounds both components of a single step.
	MaxOffset Pos = 2

	// MaxRayLength is enough to cross the board along any line.
	MaxRayLength = int(MaxComponentScalar) - 1
)

// Padded is an index into the 10x12 mailbox.
type Padded int8

var (
	mailbox64  [TotalCells]Padded
	mailbox120 [PaddedCells]Pos
)

func init() {
	initMailbox()
}

func initMailbox() {
	for i := range mailbox120 {
		mailbox120[i] = NoPos
	}
	for pos := Pos(0); pos < TotalCells; pos++ {
		padded := (Padded(pos.Y())+2)*PaddedWidth + Padded(pos.X()) + 1
		mailbox64[pos] = padded
		mailbox120[padded] = pos
	}
}

func (p Padded) Valid() bool {
	_, ok := FromPadded(p)
	return ok
}

// ToPadded maps a board square onto the mailbox.
func ToPadded(pos Pos) Padded {
	if !pos.Valid() {
		panic(fmt.Sprintf("position: square %d out of range", pos))
	}
	return mailbox64[pos]
}

// FromPadded maps a mailbox cell back onto the board. Border cells have no
// square.
func FromPadded(p Padded) (Pos, bool) {
	if !within(p, 0, PaddedCells-1) {
		return NoPos, false
	}
	pos := mailbox120[p]
	return pos, pos != NoPos
}

// Offset steps dx files and dy rows away from pos. NoPos is returned when the
// step lands on the border or a component exceeds MaxOffset. It panics if the
// step leaves the mailbox entirely, which only a double diagonal step out of
// a corner can do.
func Offset(pos Pos, dx, dy Pos) Pos {
	if !within(dx, -MaxOffset, MaxOffset) || !within(dy, -MaxOffset, MaxOffset) {
		return NoPos
	}
	return offset(pos, Padded(dx)+Padded(dy)*PaddedWidth)
}

func offset(pos Pos, delta Padded) Pos {
	target := int(ToPadded(pos)) + int(delta)
	if !within(target, 0, int(PaddedCells)-1) {
		panic(fmt.Sprintf("position: padded offset %d from %s out of table", delta, pos))
	}
	to, _ := FromPadded(Padded(target))
	return to
}

// OffsetRay repeats Offset from pos up to length times, stopping at the first
// step that leaves the board. It panics where Offset does.
func OffsetRay(pos Pos, dx, dy Pos, length int) []Pos {
	var ray []Pos
	for i := 0; i < length; i++ {
		pos = Offset(pos, dx, dy)
		if pos == NoPos {
			break
		}
		ray = append(ray, pos)
	}
	return ray
}
