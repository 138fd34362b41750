package acl

import (
	"bytes"
	"testing"
)

func TestGeneratorsStable(t *testing.T) {
	h1, z1 := deriveGenerators()
	h2, z2 := deriveGenerators()

	if !bytes.Equal(h1.Bytes(), h2.Bytes()) {
		t.Fatal("H is not stable across independent derivations")
	}
	if !bytes.Equal(z1.Bytes(), z2.Bytes()) {
		t.Fatal("Z is not stable across independent derivations")
	}
}

func TestGeneratorsMemoised(t *testing.T) {
	if !bytes.Equal(groupH().Bytes(), groupH().Bytes()) {
		t.Fatal("groupH() is not deterministic")
	}
	if !bytes.Equal(groupZ().Bytes(), groupZ().Bytes()) {
		t.Fatal("groupZ() is not deterministic")
	}
	if bytes.Equal(groupH().Bytes(), groupZ().Bytes()) {
		t.Fatal("H and Z must be distinct")
	}
}

func TestGeneratorsConcurrent(t *testing.T) {
	const n = 16
	results := make(chan [32]byte, n)
	for range n {
		go func() {
			var b [32]byte
			copy(b[:], groupH().Bytes())
			results <- b
		}()
	}

	first := <-results
	for range n - 1 {
		got := <-results
		if got != first {
			t.Fatal("concurrent first-callers observed different H values")
		}
	}
}
