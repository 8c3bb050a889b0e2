package border

import (
	"slices"
	"testing"
)

// naiveFailure computes the failure table by trying every border length.
func naiveFailure(p []byte) []int {
	if len(p) == 0 {
		return nil
	}
	table := make([]int, len(p))
	for i := range p {
		for k := i; k > 0; k-- {
			if string(p[:k]) == string(p[i+1-k:i+1]) {
				table[i] = k
				break
			}
		}
	}
	return table
}

func naiveZ(p []byte) []int {
	if len(p) == 0 {
		return nil
	}
	z := make([]int, len(p))
	for i := range p {
		k := 0
		for i+k < len(p) && p[k] == p[i+k] {
			k++
		}
		z[i] = k
	}
	return z
}

func TestFailure(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", nil},
		{"a", []int{0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abab", []int{0, 0, 1, 2}},
		{"ABABAC", []int{0, 0, 1, 2, 3, 0}},
		{"abcabcab", []int{0, 0, 0, 1, 2, 3, 4, 5}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Failure([]byte(tt.pattern))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Failure(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestZ(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", nil},
		{"a", []int{1}},
		{"aaaa", []int{4, 3, 2, 1}},
		{"abab", []int{4, 0, 2, 0}},
		{"aabxaab", []int{7, 1, 0, 0, 3, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Z([]byte(tt.pattern))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Z(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestExhaustiveBinary checks both tables against the quadratic definitions
// for every pattern over {a, b} up to length 10.
func TestExhaustiveBinary(t *testing.T) {
	for m := 1; m <= 10; m++ {
		for mask := 0; mask < 1<<m; mask++ {
			p := make([]byte, m)
			for i := range p {
				p[i] = 'a' + byte(mask>>i&1)
			}
			if got, want := Failure(p), naiveFailure(p); !slices.Equal(got, want) {
				t.Fatalf("Failure(%q) = %v, want %v", p, got, want)
			}
			if got, want := Z(p), naiveZ(p); !slices.Equal(got, want) {
				t.Fatalf("Z(%q) = %v, want %v", p, got, want)
			}
		}
	}
}
