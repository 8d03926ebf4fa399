package game

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		from, to string
		wantErr  bool
	}{
		{in: "a2 a4", from: "a2", to: "a4"},
		{in: "  e2   e4 ", from: "e2", to: "e4"},
		{in: "E7 E5", from: "e7", to: "e5"},
		{in: "g1f3", from: "g1", to: "f3"},
		{in: "", wantErr: true},
		{in: "e2", wantErr: true},
		{in: "e2 e9", wantErr: true},
		{in: "i1 a1", wantErr: true},
		{in: "e2 e4 e5", wantErr: true},
		{in: "e2-e4", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			from, to, err := ParseMove(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if from.Notation() != tt.from || to.Notation() != tt.to {
				t.Errorf("unexpected move: got=%s %s want=%s %s", from, to, tt.from, tt.to)
			}
		})
	}
}
