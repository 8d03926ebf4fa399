package board

import "github.com/daystram/chessrules/position"

// FreePath walks from along d until it reaches to. It returns the walked squares, from included
// and to excluded, or false as soon as a square past from is occupied.
func (b *Board) FreePath(from, to position.Pos, d position.Delta) ([]position.Pos, bool) {
	if d == (position.Delta{}) && from != to {
		return nil, false
	}
	var path []position.Pos
	for i := 0; ; i++ {
		q, ok := from.Add(d, i)
		if !ok {
			return nil, false
		}
		if q == to {
			return path, true
		}
		path = append(path, q)
		if i > 0 && !b.cells[q].IsEmpty() {
			return nil, false
		}
	}
}

// FreeCheckPath walks the King's castling route from from (exclusive) to to (inclusive). It fails
// on any square that is occupied or attacked by the opponent of s.
func (b *Board) FreeCheckPath(from, to position.Pos, d position.Delta, s Side) bool {
	if from == to {
		return true
	}
	for i := 1; ; i++ {
		q, ok := from.Add(d, i)
		if !ok || !b.cells[q].IsEmpty() {
			return false
		}
		if _, attacked := b.HasCheck(q, s); attacked {
			return false
		}
		if q == to {
			return true
		}
	}
}

// HasCheck reports whether target is attacked by the opponent of s. The returned path holds the
// attacker's square followed by the squares between it and target.
func (b *Board) HasCheck(target position.Pos, s Side) ([]position.Pos, bool) {
	for _, sq := range b.cells {
		p, ok := sq.Piece()
		if !ok || p.Side == s || p.Pos == target {
			continue
		}
		d, ok := p.Attacks(target)
		if !ok {
			continue
		}
		if path, ok := b.FreePath(p.Pos, target, d); ok {
			return path, true
		}
	}
	return nil, false
}

// Check reports whether the King of s is attacked, returning the attack path.
func (b *Board) Check(s Side) ([]position.Pos, bool) {
	king, ok := b.King(s)
	if !ok {
		return nil, false
	}
	return b.HasCheck(king.Pos, s)
}

// CanBlock maps each piece of s, keyed by its square, to the squares of path it can legally move
// onto. Capturing the attacker counts, as its square heads the path.
func (b *Board) CanBlock(path []position.Pos, s Side) map[position.Pos][]position.Pos {
	if len(path) == 0 {
		return nil
	}
	blocks := make(map[position.Pos][]position.Pos)
	for _, pos := range path {
		for _, p := range b.Pieces(s) {
			if b.IsLegal(p.Pos, pos) {
				blocks[p.Pos] = append(blocks[p.Pos], pos)
			}
		}
	}
	return blocks
}

// KingCannotEscape reports whether none of the King's own translations leads to a square it may
// legally step onto. Blocking or capturing the attacker with another piece is not considered.
func (b *Board) KingCannotEscape(s Side) bool {
	king, ok := b.King(s)
	if !ok {
		return false
	}
	for _, d := range king.Translations() {
		q, ok := king.Pos.Add(d, 1)
		if !ok {
			continue
		}
		if b.IsLegal(king.Pos, q) {
			return false
		}
	}
	return true
}

// Checkmate reports whether s is in check with no legal move left.
func (b *Board) Checkmate(s Side) bool {
	if _, checked := b.Check(s); !checked {
		return false
	}
	return !b.HasLegalMove(s)
}

// Stalemate reports whether s is not in check yet has no legal move.
func (b *Board) Stalemate(s Side) bool {
	if _, checked := b.Check(s); checked {
		return false
	}
	return !b.HasLegalMove(s)
}

func (b *Board) HasLegalMove(s Side) bool {
	for _, p := range b.Pieces(s) {
		for to := position.Pos(0); to < TotalCells; to++ {
			if b.IsLegal(p.Pos, to) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every move of s that Move would accept.
func (b *Board) LegalMoves(s Side) []*Move {
	var mvs []*Move
	for _, p := range b.Pieces(s) {
		for to := position.Pos(0); to < TotalCells; to++ {
			mv, err := b.Validate(p.Pos, to)
			if err != nil {
				continue
			}
			mvs = append(mvs, mv)
		}
	}
	return mvs
}
