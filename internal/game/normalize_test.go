package game

import "testing"

func TestNormalizeGuess(t *testing.T) {
	tests := []struct {
		in   string
		want byte
		ok   bool
	}{
		{in: "a", want: 'A', ok: true},
		{in: "Z", want: 'Z', ok: true},
		{in: "  q\n", want: 'Q', ok: true},
		{in: "", ok: false},
		{in: "ab", ok: false},
		{in: "1", ok: false},
		{in: "$", ok: false},
		{in: "é", ok: false},
		{in: "a b", ok: false},
	}
	for _, tc := range tests {
		got, ok := NormalizeGuess(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeGuess(%q)=(%q,%v) want=(%q,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
