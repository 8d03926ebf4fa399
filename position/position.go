package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// Invalid is returned by operations that leave the board.
	Invalid Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a board square packed as row*8+col. Row 0 is White's back rank, col 0 is file 'a'.
type Pos int8

// NewPos returns the square at (row, col), or Invalid when either component is off the board.
func NewPos(row, col int) Pos {
	if row < 0 || row >= int(MaxComponentScalar) || col < 0 || col >= int(MaxComponentScalar) {
		return Invalid
	}
	return Pos(row)*MaxComponentScalar + Pos(col)
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.Col())) + string(rune('1'+p.Row()))
}

func (p Pos) Valid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

// Row is the rank index, 0..7.
func (p Pos) Row() int {
	return int(p / MaxComponentScalar)
}

// Col is the file index, 0..7.
func (p Pos) Col() int {
	return int(p % MaxComponentScalar)
}

// Add moves the square by d scaled n times. The second result is false when the walk leaves the board.
func (p Pos) Add(d Delta, n int) (Pos, bool) {
	q := NewPos(p.Row()+int(d.Row)*n, p.Col()+int(d.Col)*n)
	return q, q != Invalid
}

func (p Pos) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return []byte{}, nil
	}
	return []byte(p.Notation()), nil
}

func (p *Pos) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = Invalid
		return nil
	}
	q, err := NewPosFromNotation(string(b))
	if err != nil {
		return fmt.Errorf("%w: %q", err, string(b))
	}
	*p = q
	return nil
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

// NotationComponentX returns the file letter for a column index.
func NotationComponentX(col int) string {
	if col < 0 || int(MaxComponentScalar) <= col {
		return ""
	}
	return string(rune('a' + col))
}

// NotationComponentY returns the rank digit for a row index.
func NotationComponentY(row int) string {
	if row < 0 || int(MaxComponentScalar) <= row {
		return ""
	}
	return string(rune('1' + row))
}
