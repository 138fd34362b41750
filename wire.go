package acl

import "github.com/gtank/ristretto255"

// decodePoint decodes a 32-byte compressed Ristretto255 point. A slice of the
// wrong length is ErrCompressedPointFormat; a correctly sized slice that does
// not decode to a valid point is ErrPointDecompression.
func decodePoint(b []byte) (*ristretto255.Element, error) {
	if len(b) != 32 {
		return nil, ErrCompressedPointFormat
	}
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrPointDecompression
	}
	return e, nil
}

// decodeScalar decodes a 32-byte canonical scalar. Any failure — wrong
// length or a non-canonical encoding — is ErrScalarFormat.
func decodeScalar(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != 32 {
		return nil, ErrScalarFormat
	}
	s, err := ristretto255.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrScalarFormat
	}
	return s, nil
}

// decodeScalarReduced decodes a 32-byte scalar by reducing it mod the group
// order rather than rejecting non-canonical encodings. It is used only for
// the Signer-contributed rnd field of a PrepareMessage, which the reference
// construction treats as scalar_from_bytes_mod_order rather than a strictly
// canonical scalar.
func decodeScalarReduced(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != 32 {
		return nil, ErrCompressedPointFormat
	}
	return scalarModOrder(b), nil
}

// scalarModOrder reduces 32 bytes, interpreted as a little-endian integer,
// mod the group order. Unlike decodeScalar it never rejects a non-canonical
// encoding. It is implemented by zero-extending to 64 bytes and performing a
// wide reduction: since the extra 32 bytes are zero, this is numerically
// identical to a direct 256-bit reduction.
func scalarModOrder(b []byte) *ristretto255.Scalar {
	var wide [64]byte
	copy(wide[:32], b)
	s, err := ristretto255.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a short input; wide is fixed at 64 bytes.
		panic("acl: scalar mod-order reduction failed: " + err.Error())
	}
	return s
}
