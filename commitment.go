package acl

import (
	"errors"
	"io"
	"slices"

	"filippo.io/edwards25519"
	"github.com/gtank/ristretto255"
)

// ErrAttributeCount is returned by Commit when the identifier and attribute
// slices have different lengths, or when either is empty. This is a caller
// precondition, not a wire-format or cryptographic failure, so it is a plain
// error rather than a member of the Signing/Verifying/User taxonomies.
var ErrAttributeCount = errors.New("acl: attribute_ids and attributes must have equal, non-zero length")

// Commitment is a generalised Pedersen commitment to a vector of N attributes,
// N = len(attributeIDs) = len(attributes), N >= 1. It is immutable once
// constructed.
//
// Its group encoding deliberately skips slot 0 and clamps the randomness
// scalar before reducing it mod the group order; both quirks are inherited
// bit-for-bit from the protocol's wire format and must not be
// "fixed" — changing either breaks interoperability with any other
// implementation of this protocol.
type Commitment struct {
	randomness   [32]byte
	attributeIDs []AttributeID
	attributes   []Attribute
}

// Commit draws 32 bytes of randomness from rand and builds a commitment to
// the given attribute vector. len(attributeIDs) must equal len(attributes)
// and be at least 1.
func Commit(rand io.Reader, attributeIDs []AttributeID, attributes []Attribute) (*Commitment, error) {
	if len(attributeIDs) == 0 || len(attributeIDs) != len(attributes) {
		return nil, ErrAttributeCount
	}

	var randomness [32]byte
	if _, err := io.ReadFull(rand, randomness[:]); err != nil {
		return nil, err
	}

	return &Commitment{
		randomness:   randomness,
		attributeIDs: slices.Clone(attributeIDs),
		attributes:   slices.Clone(attributes),
	}, nil
}

// clampedRandomnessScalar applies the X25519-style clamp to the commitment's
// randomness seed and reduces the result mod the group order. Apart from
// signing-key derivation (SigningKeyFromSeed), this is the one place in the
// protocol that uses clamping; it is not a general Pedersen commitment
// convention, and is retained only because the reference
// implementation this protocol interoperates with does it this way.
func (c *Commitment) clampedRandomnessScalar() *ristretto255.Scalar {
	clamped, err := edwards25519.NewScalar().SetBytesWithClamping(c.randomness[:])
	if err != nil {
		// SetBytesWithClamping only fails on a wrong-length input; randomness
		// is always exactly 32 bytes.
		panic("acl: clamping commitment randomness failed: " + err.Error())
	}

	s, err := ristretto255.NewScalar().SetCanonicalBytes(clamped.Bytes())
	if err != nil {
		// SetBytesWithClamping always returns a fully reduced, canonical
		// scalar.
		panic("acl: clamped randomness scalar was not canonical: " + err.Error())
	}
	return s
}

// element computes the commitment's group encoding:
//
//	C = H·scalar_from_bytes_mod_order(clamp(r)) + Σ_{i=1}^{N-1} hash_to_group(id_i)·attr_i
//
// Note the sum starts at i=1: slot 0's identifier and attribute are never
// added to the commitment. That slot is reserved for data handled out of
// band by the caller.
func (c *Commitment) element() *ristretto255.Element {
	point := ristretto255.NewIdentityElement().ScalarMult(c.clampedRandomnessScalar(), groupH())

	for i := 1; i < len(c.attributeIDs); i++ {
		g := c.attributeIDs[i].generator()
		term := ristretto255.NewIdentityElement().ScalarMult(c.attributes[i].scalar(), g)
		point.Add(point, term)
	}

	return point
}

// Bytes returns the commitment's 32-byte compressed group encoding.
func (c *Commitment) Bytes() []byte {
	return c.element().Bytes()
}

// BlindedCommitment is the original commitment combined with a blinding
// factor gamma and the Signer-contributed nonce rnd. Its group encoding,
// γ·(C + G·rnd), is the value a Verifier checks a signature against; it is
// statistically unlinkable from the original commitment the Signer saw.
type BlindedCommitment struct {
	commitment *Commitment
	gamma      *ristretto255.Scalar
	rnd        *ristretto255.Scalar
}

// element computes γ·(C + G·rnd).
func (b *BlindedCommitment) element() *ristretto255.Element {
	z1 := ristretto255.NewIdentityElement().ScalarBaseMult(b.rnd)
	z1.Add(z1, b.commitment.element())
	return ristretto255.NewIdentityElement().ScalarMult(b.gamma, z1)
}

// Bytes returns the blinded commitment's 32-byte compressed group encoding —
// the canonical wire form of a BlindedCommitment.
func (b *BlindedCommitment) Bytes() []byte {
	return b.element().Bytes()
}
