package acl

import (
	"crypto/sha512"
	"sync"

	"github.com/gtank/ristretto255"
)

// hashToGroup maps an arbitrary byte string to a Ristretto255 element by
// taking its SHA-512 digest and interpreting the 64 bytes as a uniform
// element encoding. This is a "nothing-up-my-sleeve" construction: any two
// implementations using the same curve library produce byte-identical points
// from the same input, with no discrete log relationship that a generator's
// creator could have planted.
func hashToGroup(data []byte) *ristretto255.Element {
	digest := sha512.Sum512(data)
	e, err := ristretto255.NewIdentityElement().SetUniformBytes(digest[:])
	if err != nil {
		// SetUniformBytes only fails on a short input; a 64-byte sha512.Sum512
		// output never triggers it.
		panic("acl: hash-to-group of a 64-byte digest failed: " + err.Error())
	}
	return e
}

// generators is memoised once per process via sync.OnceValues: the first
// caller (from any goroutine) computes H and Z, and every caller thereafter,
// concurrent or not, observes the same two pointers with no data race.
var generators = sync.OnceValues(deriveGenerators)

// deriveGenerators computes H and Z once, in the order the protocol requires:
// H is derived from the standard basepoint, and Z is derived from H.
func deriveGenerators() (h, z *ristretto255.Element) {
	h = hashToGroup(ristretto255.NewGeneratorElement().Bytes())
	z = hashToGroup(h.Bytes())
	return h, z
}

// groupH returns the second NUMS generator, H = hash_to_group(compress(G)).
func groupH() *ristretto255.Element {
	h, _ := generators()
	return h
}

// groupZ returns the third NUMS generator, Z = hash_to_group(compress(H)).
func groupZ() *ristretto255.Element {
	_, z := generators()
	return z
}
