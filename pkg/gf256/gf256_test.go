package gf256_test

import (
	"os"
	"strconv"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/symcrypt/pkg/gf256"
)

type product struct {
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	Product string `yaml:"product"`
}

func parseByte(t *testing.T, s string) byte {
	t.Helper()

	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}

	return byte(v)
}

type group struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Cases       []product `yaml:"cases"`
}

func loadProducts(t *testing.T) []group {
	t.Helper()

	data, err := os.ReadFile("testdata/products.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	return groups
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	for _, g := range loadProducts(t) {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range g.Cases {
				a, b, want := parseByte(t, tc.A), parseByte(t, tc.B), parseByte(t, tc.Product)

				if got := gf256.Multiply(a, b); got != want {
					t.Errorf("Multiply(%#02x, %#02x) = %#02x, want %#02x", a, b, got, want)
				}
			}
		})
	}
}

func TestMultiplyCommutes(t *testing.T) {
	t.Parallel()

	for a := range 256 {
		for b := range 256 {
			x, y := byte(a), byte(b)
			if gf256.Multiply(x, y) != gf256.Multiply(y, x) {
				t.Fatalf("Multiply(%#02x, %#02x) is not commutative", x, y)
			}
		}
	}
}

// Every non-zero element has exactly one inverse.
func TestMultiplyInverses(t *testing.T) {
	t.Parallel()

	for a := 1; a < 256; a++ {
		var count int

		for b := 1; b < 256; b++ {
			if gf256.Multiply(byte(a), byte(b)) == 1 {
				count++
			}
		}

		if count != 1 {
			t.Errorf("element %#02x has %d inverses", a, count)
		}
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()

	if got := gf256.Add(0x57, 0x83); got != 0xd4 {
		t.Errorf("Add(0x57, 0x83) = %#02x, want 0xd4", got)
	}
}
