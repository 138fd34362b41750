package acl

import (
	"bytes"
	"testing"

	"github.com/fharding1/aclgo/internal/testvec"
)

func testAttributes() ([]AttributeID, []Attribute) {
	return []AttributeID{{1}, {2}, {3}},
		[]Attribute{NewAttribute(10), NewAttribute(20), NewAttribute(30)}
}

func TestCommitAttributeCountMismatch(t *testing.T) {
	drbg := testvec.New("commit count mismatch")
	ids, attrs := testAttributes()

	if _, err := Commit(drbg, ids, attrs[:2]); err != ErrAttributeCount {
		t.Fatalf("got %v, want ErrAttributeCount", err)
	}
	if _, err := Commit(drbg, nil, nil); err != ErrAttributeCount {
		t.Fatalf("got %v, want ErrAttributeCount for empty vectors", err)
	}
}

func TestCommitDeterministicGivenSameRandomness(t *testing.T) {
	ids, attrs := testAttributes()

	c1, err := Commit(testvec.New("commit determinism"), ids, attrs)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c2, err := Commit(testvec.New("commit determinism"), ids, attrs)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatal("identical randomness and attributes produced different commitments")
	}
}

func TestCommitSlot0Ignored(t *testing.T) {
	ids, attrs := testAttributes()

	drbg := testvec.New("commit slot0")
	c1, err := Commit(drbg, ids, attrs)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	altered := append([]Attribute(nil), attrs...)
	altered[0] = NewAttribute(999999)

	drbg2 := testvec.New("commit slot0")
	c2, err := Commit(drbg2, ids, altered)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatal("changing slot 0's attribute changed the commitment, but slot 0 must be ignored")
	}
}

func TestCommitOtherSlotsAffectEncoding(t *testing.T) {
	ids, attrs := testAttributes()

	drbg := testvec.New("commit slot1 affects")
	c1, err := Commit(drbg, ids, attrs)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	altered := append([]Attribute(nil), attrs...)
	altered[1] = NewAttribute(999999)

	drbg2 := testvec.New("commit slot1 affects")
	c2, err := Commit(drbg2, ids, altered)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatal("changing slot 1's attribute did not change the commitment")
	}
}

func TestCommitmentBytesLength(t *testing.T) {
	ids, attrs := testAttributes()
	c, err := Commit(testvec.New("commit length"), ids, attrs)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(c.Bytes()) != 32 {
		t.Fatalf("commitment encoding length = %d, want 32", len(c.Bytes()))
	}
}
