package simd

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty", []byte{}, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"middle", []byte("hello"), 'l', 2},
		{"null_byte", []byte{1, 2, 0, 3}, 0, 2},
		{"high_byte", []byte{1, 2, 255, 4}, 255, 2},
		{"second_word", []byte("abcdefghijklmnop"), 'n', 13},
		{"tail", []byte("abcdefghijk"), 'k', 10},
		{"not_found_long", []byte("the quick brown fox jumps over the lazy dog"), 'Q', -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := bytes.IndexByte(tt.haystack, tt.needle); got != std {
				t.Errorf("Memchr != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

// TestMemchrBorrow places a 0x01 byte right above a zero byte, the case where
// the zero-byte trick marks a byte that does not match.
func TestMemchrBorrow(t *testing.T) {
	haystack := []byte{9, 9, 9, 0x41, 0x40, 9, 9, 9, 9, 9}
	if got := Memchr(haystack, 0x41); got != 3 {
		t.Errorf("Memchr = %d, want 3", got)
	}
}

func naivePair(h []byte, first, second byte, offset int) int {
	for i := 0; i+offset < len(h); i++ {
		if h[i] == first && h[i+offset] == second {
			return i
		}
	}
	return -1
}

func TestMemchrPair(t *testing.T) {
	tests := []struct {
		name          string
		haystack      string
		first, second byte
		offset        int
		want          int
	}{
		{"adjacent", "xxabxx", 'a', 'b', 1, 2},
		{"gap", "a..b", 'a', 'b', 3, 0},
		{"none", "abababab", 'b', 'b', 1, -1},
		{"offset_too_large", "ab", 'a', 'b', 2, -1},
		{"negative_offset", "ab", 'a', 'b', -1, -1},
		{"long", "0123456789abcdefghijklmnopqrstuv", 'u', 'v', 1, 30},
		{"first_of_many", "zzzzzzzzzzabzzzzzzabzzzz", 'a', 'b', 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemchrPair([]byte(tt.haystack), tt.first, tt.second, tt.offset)
			if got != tt.want {
				t.Errorf("MemchrPair(%q, %q, %q, %d) = %d, want %d",
					tt.haystack, tt.first, tt.second, tt.offset, got, tt.want)
			}
		})
	}
}

// TestMemchrPairBorrow builds words where a borrow artifact would report a
// pair one byte above a real one.
func TestMemchrPairBorrow(t *testing.T) {
	// 'A'=0x41 followed by '@'=0x40: xor with 0x41 gives 0x00 then 0x01.
	haystack := []byte("..........A@@.........")
	if got := MemchrPair(haystack, 'A', '@', 2); got != -1 && haystack[got] != 'A' {
		t.Errorf("MemchrPair reported a false hit at %d", got)
	}
	if got, want := MemchrPair(haystack, '@', '@', 1), 11; got != want {
		t.Errorf("MemchrPair = %d, want %d", got, want)
	}
}

func TestMemchrPairRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 2000; iter++ {
		n := rng.IntN(64)
		h := make([]byte, n)
		for i := range h {
			h[i] = byte(0x3f + rng.IntN(4))
		}
		first := byte(0x3f + rng.IntN(4))
		second := byte(0x3f + rng.IntN(4))
		offset := rng.IntN(4)
		if got, want := MemchrPair(h, first, second, offset), naivePair(h, first, second, offset); got != want {
			t.Fatalf("MemchrPair(%q, %q, %q, %d) = %d, want %d", h, first, second, offset, got, want)
		}
	}
}

func TestForEach(t *testing.T) {
	h := []byte("abcabcaab")

	var pairs []int
	ForEachPair(h, 'a', 'b', 1, func(i int) bool {
		pairs = append(pairs, i)
		return true
	})
	if want := []int{0, 3, 7}; !equalInts(pairs, want) {
		t.Errorf("ForEachPair = %v, want %v", pairs, want)
	}

	var singles []int
	ForEachByte(h, 'a', func(i int) bool {
		singles = append(singles, i)
		return len(singles) < 3
	})
	if want := []int{0, 3, 6}; !equalInts(singles, want) {
		t.Errorf("ForEachByte = %v, want %v", singles, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkMemchrPair(b *testing.B) {
	h := bytes.Repeat([]byte("abcdefgh"), 1<<12)
	h = append(h, 'x', 'y')
	b.SetBytes(int64(len(h)))
	for b.Loop() {
		MemchrPair(h, 'x', 'y', 1)
	}
}
