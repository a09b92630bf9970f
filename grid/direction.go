package grid

// Direction is a compass move on the board. Directions are ordered by their
// numeric value, so they can key maps and be sorted.
type Direction uint8

const (
	// Idle is the absence of movement; it is its own reverse.
	Idle Direction = iota
	North
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// deltas holds (row, col) offsets indexed by Direction.
var deltas = [...][2]int{
	Idle:      {0, 0},
	North:     {-1, 0},
	East:      {0, 1},
	South:     {1, 0},
	West:      {0, -1},
	NorthEast: {-1, 1},
	SouthEast: {1, 1},
	SouthWest: {1, -1},
	NorthWest: {-1, -1},
}

var names = [...]string{
	Idle:      "Idle",
	North:     "N",
	East:      "E",
	South:     "S",
	West:      "W",
	NorthEast: "NE",
	SouthEast: "SE",
	SouthWest: "SW",
	NorthWest: "NW",
}

// Cardinals lists the four orthogonal directions clockwise from North.
func Cardinals() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Delta returns the (row, col) offset of a single step in d.
// Unknown values behave like Idle.
func (d Direction) Delta() (dr, dc int) {
	if int(d) >= len(deltas) {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Reverse returns the opposite direction: N↔S, E↔W, NE↔SW, NW↔SE, Idle↔Idle.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	}
	return Idle
}

// TurnRight rotates d by 90° clockwise. Idle stays Idle.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	case NorthEast:
		return SouthEast
	case SouthEast:
		return SouthWest
	case SouthWest:
		return NorthWest
	case NorthWest:
		return NorthEast
	}
	return Idle
}

// TurnLeft rotates d by 90° counter-clockwise. Idle stays Idle.
func (d Direction) TurnLeft() Direction {
	return d.TurnRight().Reverse()
}

// IsHorizontal reports whether d is East or West.
func (d Direction) IsHorizontal() bool { return d == East || d == West }

// IsVertical reports whether d is North or South.
func (d Direction) IsVertical() bool { return d == North || d == South }

// String returns the compass abbreviation of d.
func (d Direction) String() string {
	if int(d) >= len(names) {
		return "Direction(?)"
	}
	return names[d]
}
