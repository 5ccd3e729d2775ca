package gen

import (
	"strings"
	"testing"
)

// two streams with the same seed must replay the same draws
func TestStream_deterministic(t *testing.T) {
	a := NewStream(1337)
	b := NewStream(1337)

	for i := 0; i < 1000; i++ {
		if a.Base() != b.Base() {
			t.Fatal("base draws diverged")
		}
		if a.IntN(100) != b.IntN(100) {
			t.Fatal("int draws diverged")
		}
		if a.Float64() != b.Float64() {
			t.Fatal("float draws diverged")
		}
	}
}

func TestStream_Base(t *testing.T) {
	stream := NewStream(2)
	seen := map[byte]int{}
	for i := 0; i < 4000; i++ {
		base := stream.Base()
		if !strings.ContainsRune(Alphabet, rune(base)) {
			t.Fatalf("drew %q, not in alphabet", base)
		}
		seen[base]++
	}

	// every base should show up in a sample this large
	for i := 0; i < len(Alphabet); i++ {
		if seen[Alphabet[i]] == 0 {
			t.Errorf("base %q never drawn", Alphabet[i])
		}
	}
}

func TestStream_Float64(t *testing.T) {
	stream := NewStream(3)
	for i := 0; i < 1000; i++ {
		f := stream.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, want [0,1)", f)
		}
	}
}

// Other must always substitute, never echo the input base
func TestStream_Other(t *testing.T) {
	stream := NewStream(4)
	for i := 0; i < len(Alphabet); i++ {
		base := Alphabet[i]
		for trial := 0; trial < 100; trial++ {
			other := stream.Other(base)
			if other == base {
				t.Fatalf("Other(%q) returned the same base", base)
			}
			if !strings.ContainsRune(Alphabet, rune(other)) {
				t.Fatalf("Other(%q) = %q, not in alphabet", base, other)
			}
		}
	}
}
