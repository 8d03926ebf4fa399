package position

import "fmt"

// Delta is a translation vector in (row, col) steps.
type Delta struct {
	Row, Col int8
}

func (d Delta) String() string {
	return fmt.Sprintf("(%d,%d)", d.Row, d.Col)
}
