package position

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos(28),
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNewPos(t *testing.T) {
	t.Parallel()
	tests := []struct {
		row, col int
		want     Pos
	}{
		{row: 0, col: 0, want: 0},
		{row: 0, col: 4, want: 4},
		{row: 7, col: 7, want: 63},
		{row: 3, col: 4, want: 28},
		{row: -1, col: 0, want: Invalid},
		{row: 0, col: 8, want: Invalid},
		{row: 8, col: 8, want: Invalid},
	}

	for _, tt := range tests {
		got := NewPos(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("unexpected pos for (%d,%d): got=%d want=%d", tt.row, tt.col, got, tt.want)
		}
		if got != Invalid && (got.Row() != tt.row || got.Col() != tt.col) {
			t.Errorf("unexpected components: got=(%d,%d) want=(%d,%d)", got.Row(), got.Col(), tt.row, tt.col)
		}
	}
}

func TestPosAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		from   string
		d      Delta
		n      int
		want   string
		wantOK bool
	}{
		{name: "single step", from: "e2", d: Delta{Row: 1}, n: 1, want: "e3", wantOK: true},
		{name: "double step", from: "e2", d: Delta{Row: 1}, n: 2, want: "e4", wantOK: true},
		{name: "diagonal", from: "c1", d: Delta{Row: 1, Col: 1}, n: 5, want: "h6", wantOK: true},
		{name: "knight", from: "g1", d: Delta{Row: 2, Col: -1}, n: 1, want: "f3", wantOK: true},
		{name: "off file", from: "h1", d: Delta{Col: 1}, n: 1, wantOK: false},
		{name: "off rank", from: "a8", d: Delta{Row: 1}, n: 1, wantOK: false},
		{name: "no wrap", from: "h4", d: Delta{Row: 1, Col: 1}, n: 1, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			from, err := NewPosFromNotation(tt.from)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := from.Add(tt.d, tt.n)
			if ok != tt.wantOK {
				t.Fatalf("unexpected ok: got=%v want=%v", ok, tt.wantOK)
			}
			if ok && got.Notation() != tt.want {
				t.Errorf("unexpected result: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestPosText(t *testing.T) {
	t.Parallel()
	p := NewPos(3, 4)
	b, err := p.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "e4" {
		t.Errorf("unexpected text: got=%s want=e4", b)
	}

	var q Pos
	if err := q.UnmarshalText(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != p {
		t.Errorf("unexpected pos: got=%v want=%v", q, p)
	}

	if err := q.UnmarshalText([]byte{}); err != nil || q != Invalid {
		t.Errorf("unexpected empty decode: got=%v err=%v", q, err)
	}
	if err := q.UnmarshalText([]byte("z9")); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidNotation)
	}
}

func TestNotationComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		i     int
		wantX string
		wantY string
	}{
		{i: 0, wantX: "a", wantY: "1"},
		{i: 3, wantX: "d", wantY: "4"},
		{i: 7, wantX: "h", wantY: "8"},
		{i: -1, wantX: "", wantY: ""},
		{i: 8, wantX: "", wantY: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprint(tt.i), func(t *testing.T) {
			t.Parallel()
			if got := NotationComponentX(tt.i); got != tt.wantX {
				t.Errorf("unexpected file: got=%q want=%q", got, tt.wantX)
			}
			if got := NotationComponentY(tt.i); got != tt.wantY {
				t.Errorf("unexpected rank: got=%q want=%q", got, tt.wantY)
			}
		})
	}
}
