package acl

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
	"github.com/gtank/ristretto255"
)

// SeedSize is the length, in bytes, of the seed from which a SigningKey is
// derived.
const SeedSize = 32

// SigningKey is a Signer's secret key: a single Ristretto255 scalar.
type SigningKey struct {
	scalar *ristretto255.Scalar
}

// VerifyingKey is the public counterpart of a SigningKey: scalar·basepoint.
type VerifyingKey struct {
	point *ristretto255.Element
}

// SigningKeyFromSeed deterministically derives a SigningKey and its
// VerifyingKey from a 32-byte seed: scalar = clamp(SHA-512(seed)[0:32])
// reduced mod the group order. The seed is the durable form of the key;
// callers are responsible for its storage and zeroisation.
func SigningKeyFromSeed(seed [SeedSize]byte) (*SigningKey, *VerifyingKey) {
	digest := sha512.Sum512(seed[:])

	clamped, err := edwards25519.NewScalar().SetBytesWithClamping(digest[:32])
	if err != nil {
		panic("acl: clamping signing key seed failed: " + err.Error())
	}

	scalar, err := ristretto255.NewScalar().SetCanonicalBytes(clamped.Bytes())
	if err != nil {
		panic("acl: clamped signing key scalar was not canonical: " + err.Error())
	}

	sk := &SigningKey{scalar: scalar}
	vk := &VerifyingKey{point: ristretto255.NewIdentityElement().ScalarBaseMult(scalar)}
	return sk, vk
}

// VerifyingKey returns the public key corresponding to sk.
func (sk *SigningKey) VerifyingKey() *VerifyingKey {
	return &VerifyingKey{point: ristretto255.NewIdentityElement().ScalarBaseMult(sk.scalar)}
}

// Bytes returns the verifying key's 32-byte compressed group encoding.
func (vk *VerifyingKey) Bytes() []byte {
	return vk.point.Bytes()
}

// DecodeVerifyingKey parses a 32-byte compressed group encoding produced by
// VerifyingKey.Bytes.
func DecodeVerifyingKey(b []byte) (*VerifyingKey, error) {
	point, err := decodePoint(b)
	if err != nil {
		return nil, err
	}
	return &VerifyingKey{point: point}, nil
}

// Zero overwrites the signing key's secret scalar with zero. After Zero, sk
// must not be used.
func (sk *SigningKey) Zero() {
	sk.scalar = ristretto255.NewScalar()
}
