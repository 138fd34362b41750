package acl

import (
	"crypto/sha512"

	"github.com/gtank/ristretto255"
)

// PrehashedMessageSize is the length, in bytes, of the message hash the
// protocol operates over; the protocol never sees the application message
// itself, only its SHA-512 digest.
const PrehashedMessageSize = 64

// fiatShamirChallenge computes the protocol's single Fiat-Shamir challenge
// function:
//
//	buf = compress(xi) || compress(xi1) || compress(alpha)
//	    || compress(beta1) || compress(beta2) || compress(eta) || h
//	return scalar_from_bytes_mod_order_wide(SHA-512(buf))
//
// The field order is fixed by the protocol; permuting it breaks
// interoperability with any other implementation.
func fiatShamirChallenge(xi, xi1, alpha, beta1, beta2, eta *ristretto255.Element, h []byte) *ristretto255.Scalar {
	hash := sha512.New()
	hash.Write(xi.Bytes())
	hash.Write(xi1.Bytes())
	hash.Write(alpha.Bytes())
	hash.Write(beta1.Bytes())
	hash.Write(beta2.Bytes())
	hash.Write(eta.Bytes())
	hash.Write(h)

	s, err := ristretto255.NewScalar().SetUniformBytes(hash.Sum(nil))
	if err != nil {
		// sha512.Sum always produces 64 bytes.
		panic("acl: Fiat-Shamir challenge reduction failed: " + err.Error())
	}
	return s
}
