package acl

import (
	"bytes"
	"testing"
)

func TestSigningKeyFromSeedDeterministic(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	_, vk1 := SigningKeyFromSeed(seed)
	_, vk2 := SigningKeyFromSeed(seed)

	if !bytes.Equal(vk1.Bytes(), vk2.Bytes()) {
		t.Fatal("SigningKeyFromSeed is not deterministic for a fixed seed")
	}
}

func TestSigningKeyDistinctSeedsDistinctKeys(t *testing.T) {
	var seedA, seedB [SeedSize]byte
	seedB[0] = 1

	_, vkA := SigningKeyFromSeed(seedA)
	_, vkB := SigningKeyFromSeed(seedB)

	if bytes.Equal(vkA.Bytes(), vkB.Bytes()) {
		t.Fatal("distinct seeds produced the same verifying key")
	}
}

func TestSigningKeyVerifyingKeyMatchesDerived(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 7

	sk, vk := SigningKeyFromSeed(seed)
	if !bytes.Equal(sk.VerifyingKey().Bytes(), vk.Bytes()) {
		t.Fatal("sk.VerifyingKey() disagrees with the key returned by SigningKeyFromSeed")
	}
}

func TestSigningKeyZero(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 9

	sk, _ := SigningKeyFromSeed(seed)
	sk.Zero()

	zeroVK := sk.VerifyingKey()
	identity := make([]byte, 32) // compressed Ristretto255 identity element: all zero bytes

	if !bytes.Equal(zeroVK.Bytes(), identity) {
		t.Fatalf("zeroed signing key's public point = %x, want the identity element", zeroVK.Bytes())
	}
}

func TestVerifyingKeyBytesLength(t *testing.T) {
	var seed [SeedSize]byte
	_, vk := SigningKeyFromSeed(seed)
	if len(vk.Bytes()) != 32 {
		t.Fatalf("verifying key encoding length = %d, want 32", len(vk.Bytes()))
	}
}

func TestDecodeVerifyingKeyRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 3
	_, vk := SigningKeyFromSeed(seed)

	decoded, err := DecodeVerifyingKey(vk.Bytes())
	if err != nil {
		t.Fatalf("DecodeVerifyingKey: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), vk.Bytes()) {
		t.Fatal("decoded verifying key does not round-trip")
	}
}

func TestDecodeVerifyingKeyWrongLength(t *testing.T) {
	if _, err := DecodeVerifyingKey(make([]byte, 31)); err != ErrCompressedPointFormat {
		t.Fatalf("got %v, want ErrCompressedPointFormat", err)
	}
}
