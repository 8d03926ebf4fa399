package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/position"
)

// Dump renders the board as a plain ASCII grid using FEN letters.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := int(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentY(y)))
		for x := 0; x < int(Width); x++ {
			sym := " "
			if p, ok := b.cells[position.NewPos(y, x)].Piece(); ok {
				sym = p.Kind.SymbolFEN(p.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < int(Width); x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentX(x)))
	}
	return builder.String()
}

// Draw renders the board with Unicode glyphs on a chequered background. Without colored the
// escape sequences are left out and empty cells show EmptyGlyph.
func (b *Board) Draw(colored bool) string {
	label := color.New(color.Bold)
	light := color.New(color.FgBlack, color.BgHiWhite)
	dark := color.New(color.FgBlack, color.BgGreen)
	for _, c := range []*color.Color{label, light, dark} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	builder := strings.Builder{}
	for y := int(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(label.Sprintf(" %s ", position.NotationComponentY(y)))
		for x := 0; x < int(Width); x++ {
			sq := b.cells[position.NewPos(y, x)]
			sym := sq.Glyph()
			if colored && sq.IsEmpty() {
				sym = " "
			}
			cell := light
			if x%2^y%2 == 0 {
				cell = dark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < int(Width); x++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", position.NotationComponentX(x)))
	}
	return builder.String()
}
