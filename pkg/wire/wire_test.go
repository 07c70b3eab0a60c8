package wire_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/symcrypt/pkg/wire"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, "0"},
		{[]byte{105, 196, 224, 216}, "105 196 224 216"},
		{[]byte{255, 0, 7}, "255 0 7"},
	}

	for _, tc := range tests {
		if got := wire.Encode(tc.data); got != tc.want {
			t.Errorf("Encode(%v) = %q, want %q", tc.data, got, tc.want)
		}
	}
}

func TestEveryByteRoundTrips(t *testing.T) {
	t.Parallel()

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	got, err := wire.DecodeBytes(wire.Encode(all))
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}

	if string(got) != string(all) {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestDecodeBytesMalformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"out of range":  "1 2 256",
		"negative":      "1 -2 3",
		"letters":       "1 a 3",
		"double space":  "1  2",
		"leading space": " 1 2",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := wire.DecodeBytes(text); !errors.Is(err, wire.ErrMalformed) {
				t.Errorf("DecodeBytes(%q) error = %v, want ErrMalformed", text, err)
			}
		})
	}
}

func TestDecodeIntsTrailingSpace(t *testing.T) {
	t.Parallel()

	got, err := wire.DecodeInts("72 101 1000 ")
	if err != nil {
		t.Fatalf("DecodeInts: %v", err)
	}

	want := []int{72, 101, 1000}
	if len(got) != len(want) {
		t.Fatalf("DecodeInts = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DecodeInts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"":        0,
		"1":       1,
		"1 2 3":   3,
		"1 2 3  ": 3,
		" 1":      2,
		"1  2":    3,
	}

	for text, want := range tests {
		if got := len(wire.Split(text)); got != want {
			t.Errorf("len(Split(%q)) = %d, want %d", text, got, want)
		}
	}
}

func TestLooksEncrypted(t *testing.T) {
	t.Parallel()

	sixteen := strings.TrimSpace(strings.Repeat("12 ", 16))

	tests := []struct {
		text      string
		minTokens int
		want      bool
	}{
		{"", 0, false},
		{"123", 0, false},
		{"1 2", 0, true},
		{"57 ", 0, true},
		{"1 2", 16, false},
		{sixteen, 16, true},
		{sixteen + " x", 16, false},
		{"hello world", 0, false},
		{"1 2\n3", 0, false},
	}

	for _, tc := range tests {
		if got := wire.LooksEncrypted(tc.text, tc.minTokens); got != tc.want {
			t.Errorf("LooksEncrypted(%q, %d) = %v, want %v", tc.text, tc.minTokens, got, tc.want)
		}
	}
}
