package game

import (
	"fmt"
	"strings"

	"github.com/daystram/chessrules/position"
)

// ParseMove reads a "from to" pair such as "a2 a4". The compact "a2a4" form is accepted too.
func ParseMove(s string) (from, to position.Pos, err error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return position.Invalid, position.Invalid, fmt.Errorf("%w: expected two squares, got %q", ErrInvalidInput, s)
	}
	if from, err = position.NewPosFromNotation(fields[0]); err != nil {
		return position.Invalid, position.Invalid, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if to, err = position.NewPosFromNotation(fields[1]); err != nil {
		return position.Invalid, position.Invalid, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return from, to, nil
}
