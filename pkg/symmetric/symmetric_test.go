package symmetric_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/idelchi/symcrypt/pkg/symmetric"
	"github.com/idelchi/symcrypt/pkg/wire"
)

func TestAESRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []string{
		"0123456789abcdef",
		"0123456789abcdef01234567",
		"0123456789abcdef0123456789abcdef",
		"short",
		"",
		"a key that is far longer than thirty-two bytes",
	}

	for _, key := range keys {
		t.Run(fmt.Sprintf("key-%d", len(key)), func(t *testing.T) {
			t.Parallel()

			for n := 0; n <= 100; n++ {
				plaintext := strings.Repeat("x", n/2) + strings.Repeat("é", n/4)

				ciphertext := symmetric.Encrypt(plaintext, key)

				got, err := symmetric.Decrypt(ciphertext, key)
				if err != nil {
					t.Fatalf("Decrypt(len %d): %v", len(plaintext), err)
				}

				if got != plaintext {
					t.Fatalf("round trip of %q = %q", plaintext, got)
				}
			}
		})
	}
}

func TestAESRoundTripText(t *testing.T) {
	t.Parallel()

	tests := []struct{ text, key string }{
		{"Hello World!", "1234567890123456"},
		{"Hello World!", "short"},
		{"1234567890123456", "myverysecretkey1"},
		{"This is a longer message that will span multiple AES blocks for testing purposes.", "supersecretkey16"},
		{"Héllo Wörld! 🌟", "testkey123456789"},
		{"Test123!@#$%^&*()", "anotherkey123456"},
		{"Test facade methods", "testkey"},
		{"line one\nline two\r\n\ttabbed\x00nul", "k"},
	}

	for _, tc := range tests {
		got, err := symmetric.Decrypt(symmetric.Encrypt(tc.text, tc.key), tc.key)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if got != tc.text {
			t.Errorf("round trip of %q with key %q = %q", tc.text, tc.key, got)
		}
	}
}

// FIPS-197 C.1 through the text pipeline: the first block carries the standard
// ciphertext, the second is the full padding block.
func TestAESKnownVector(t *testing.T) {
	t.Parallel()

	key := make([]byte, 16)
	plaintext := make([]byte, 16)

	for i := range 16 {
		key[i] = byte(i)
		plaintext[i] = byte(i * 0x11)
	}

	ciphertext := symmetric.Encrypt(string(plaintext), string(key))

	const firstBlock = "105 196 224 216 106 123 4 48 216 205 183 128 112 180 197 90"

	if !strings.HasPrefix(ciphertext, firstBlock+" ") {
		t.Errorf("ciphertext = %q, want prefix %q", ciphertext, firstBlock)
	}
}

func TestAESPaddingBoundary(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 48} {
		ciphertext := symmetric.Encrypt(strings.Repeat("A", n), "0123456789abcdef")

		want := (n/16 + 1) * 16
		if got := len(wire.Split(ciphertext)); got != want {
			t.Errorf("%d bytes of plaintext gave %d tokens, want %d", n, got, want)
		}
	}
}

func TestAESKeyCoercion(t *testing.T) {
	t.Parallel()

	const plaintext = "coerced keys collide"

	if symmetric.Encrypt(plaintext, "abcde") != symmetric.Encrypt(plaintext, "abcde\x00") {
		t.Error("a 5-byte key and the same key with a trailing zero differ")
	}

	if symmetric.Encrypt(plaintext, "0123456789abcdefA") != symmetric.Encrypt(plaintext, "0123456789abcdefB") {
		t.Error("17-byte keys sharing 16 bytes differ")
	}

	if symmetric.Encrypt(plaintext, "abcde") == symmetric.Encrypt(plaintext, "abcdf") {
		t.Error("different short keys produced the same ciphertext")
	}
}

func TestAESDeterministic(t *testing.T) {
	t.Parallel()

	a := symmetric.Encrypt("same input", "same key")
	b := symmetric.Encrypt("same input", "same key")

	if a != b {
		t.Errorf("Encrypt is not deterministic: %q vs %q", a, b)
	}
}

func TestAESMalformedCiphertext(t *testing.T) {
	t.Parallel()

	valid := symmetric.Encrypt("payload", "key")
	tokens := wire.Split(valid)

	tests := map[string]string{
		"short count":    "1 2 3",
		"one extra":      valid + " 7",
		"one missing":    strings.Join(tokens[:len(tokens)-1], " "),
		"out of range":   strings.Replace(valid, tokens[0], "300", 1),
		"non-numeric":    "a" + valid,
		"doubled spaces": strings.Replace(valid, " ", "  ", 1),
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := symmetric.Decrypt(text, "key"); !errors.Is(err, symmetric.ErrMalformedCiphertext) {
				t.Errorf("Decrypt(%q) error = %v, want ErrMalformedCiphertext", text, err)
			}
		})
	}
}

// A wrong key does not fail: the padding check is permissive, so the output is garbage.
func TestAESWrongKeyIsSilent(t *testing.T) {
	t.Parallel()

	ciphertext := symmetric.Encrypt("attack at dawn", "right key")

	got, err := symmetric.Decrypt(ciphertext, "wrong key")
	if err != nil {
		t.Fatalf("Decrypt with wrong key: %v", err)
	}

	if got == "attack at dawn" {
		t.Error("wrong key recovered the plaintext")
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()

	for _, alg := range []symmetric.Algorithm{symmetric.AES, symmetric.XOR} {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			// Explicit directions have no trouble with digit-only plaintext.
			const plaintext = "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16"

			ciphertext, err := symmetric.Transform(alg, symmetric.Encrypting, plaintext, "transform key")
			if err != nil {
				t.Fatalf("encrypt: %v", err)
			}

			got, err := symmetric.Transform(alg, symmetric.Decrypting, ciphertext, "transform key")
			if err != nil {
				t.Fatalf("decrypt: %v", err)
			}

			if got != plaintext {
				t.Errorf("round trip = %q, want %q", got, plaintext)
			}
		})
	}
}

func TestTransformUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := symmetric.Transform(symmetric.Algorithm(9), symmetric.Encrypting, "x", "k")
	if !errors.Is(err, symmetric.ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := map[string]symmetric.Algorithm{"aes": symmetric.AES, "AES": symmetric.AES, " xor ": symmetric.XOR}

	for name, want := range tests {
		got, err := symmetric.ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := symmetric.ParseAlgorithm("des"); !errors.Is(err, symmetric.ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(des) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for i := range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			plaintext := strings.Repeat(fmt.Sprint(i), i)
			key := fmt.Sprintf("key-%02d-padding-to-32-bytes-xx", i)

			got, err := symmetric.Decrypt(symmetric.Encrypt(plaintext, key), key)
			if err != nil {
				errs <- err

				return
			}

			if got != plaintext {
				errs <- fmt.Errorf("goroutine %d: got %q", i, got)
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
