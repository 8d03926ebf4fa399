package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists the playing sides in turn order.
var Sides = []Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row direction this side's pawns advance in.
func (s Side) Forward() int8 {
	if s == SideBlack {
		return -1
	}
	return 1
}

// HomeRow is the back rank row of the side.
func (s Side) HomeRow() int {
	if s == SideBlack {
		return int(Height) - 1
	}
	return 0
}

// PawnRow is the row the side's pawns start on.
func (s Side) PawnRow() int {
	return s.HomeRow() + int(s.Forward())
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "White":
		*s = SideWhite
	case "Black":
		*s = SideBlack
	default:
		return ErrInvalidSide
	}
	return nil
}
