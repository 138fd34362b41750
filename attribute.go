package acl

import (
	"encoding/binary"

	"github.com/gtank/ristretto255"
)

// AttributeIDSize is the length, in bytes, of an AttributeID.
const AttributeIDSize = 32

// AttributeID identifies an attribute slot. It is domain-separation data used
// to derive that slot's Pedersen generator via hash_to_group — it is not
// secret, and callers are responsible for keeping the identifiers in a single
// commitment pairwise distinct: duplicates collapse into linear combinations
// and destroy the commitment's binding property.
type AttributeID [AttributeIDSize]byte

// generator returns this attribute slot's Pedersen generator,
// hash_to_group(id).
func (id AttributeID) generator() *ristretto255.Element {
	return hashToGroup(id[:])
}

// Attribute is a 128-bit unsigned integer value carried in one commitment
// slot. It is rendered as two machine words rather than a single built-in
// type because Go has no native 128-bit integer.
type Attribute struct {
	Hi, Lo uint64
}

// NewAttribute lifts a uint64 into an Attribute with a zero high half.
func NewAttribute(v uint64) Attribute {
	return Attribute{Lo: v}
}

// scalar encodes the attribute as a Ristretto255 scalar. Since the value is
// at most 2^128-1 and the group order exceeds 2^252, the 32-byte little-endian
// encoding is always canonical.
func (a Attribute) scalar() *ristretto255.Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:8], a.Lo)
	binary.LittleEndian.PutUint64(b[8:16], a.Hi)

	s, err := ristretto255.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic("acl: 128-bit attribute did not encode to a canonical scalar: " + err.Error())
	}
	return s
}
