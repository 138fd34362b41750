package acl

import (
	"io"

	"github.com/gtank/ristretto255"
)

// PrepareMessageSize is the wire size, in bytes, of a PrepareMessage: three
// compressed points and one scalar.
const PrepareMessageSize = 4 * 32

// PreSignatureSize is the wire size, in bytes, of a PreSignature: five
// scalars.
const PreSignatureSize = 5 * 32

// PrepareMessage is the Signer's first message to the User: (A, B1, B2, rnd).
type PrepareMessage struct {
	A, B1, B2 *ristretto255.Element
	Rnd       *ristretto255.Scalar
}

// Bytes encodes the message as A || B1 || B2 || rnd, PrepareMessageSize bytes.
func (m *PrepareMessage) Bytes() []byte {
	out := make([]byte, 0, PrepareMessageSize)
	out = append(out, m.A.Bytes()...)
	out = append(out, m.B1.Bytes()...)
	out = append(out, m.B2.Bytes()...)
	out = append(out, m.Rnd.Bytes()...)
	return out
}

// decodePrepareMessage parses a PrepareMessageSize-byte wire message. The rnd
// field is reduced mod the group order rather than rejected when
// non-canonical.
func decodePrepareMessage(b []byte) (*PrepareMessage, error) {
	if len(b) != PrepareMessageSize {
		return nil, ErrCompressedPointFormat
	}

	a, err := decodePoint(b[0:32])
	if err != nil {
		return nil, err
	}
	b1, err := decodePoint(b[32:64])
	if err != nil {
		return nil, err
	}
	b2, err := decodePoint(b[64:96])
	if err != nil {
		return nil, err
	}
	rnd, err := decodeScalarReduced(b[96:128])
	if err != nil {
		return nil, err
	}

	return &PrepareMessage{A: a, B1: b1, B2: b2, Rnd: rnd}, nil
}

// PreSignature is the Signer's second message to the User: (c, d, r, s1, s2).
type PreSignature struct {
	C, D, R, S1, S2 *ristretto255.Scalar
}

// Bytes encodes the presignature as c || d || r || s1 || s2, PreSignatureSize
// bytes.
func (p *PreSignature) Bytes() []byte {
	out := make([]byte, 0, PreSignatureSize)
	out = append(out, p.C.Bytes()...)
	out = append(out, p.D.Bytes()...)
	out = append(out, p.R.Bytes()...)
	out = append(out, p.S1.Bytes()...)
	out = append(out, p.S2.Bytes()...)
	return out
}

// decodePreSignature parses a PreSignatureSize-byte wire message. Every
// scalar must be canonically encoded.
func decodePreSignature(b []byte) (*PreSignature, error) {
	if len(b) != PreSignatureSize {
		return nil, ErrScalarFormat
	}

	fields := make([]*ristretto255.Scalar, 5)
	for i := range fields {
		s, err := decodeScalar(b[i*32 : i*32+32])
		if err != nil {
			return nil, err
		}
		fields[i] = s
	}

	return &PreSignature{C: fields[0], D: fields[1], R: fields[2], S1: fields[3], S2: fields[4]}, nil
}

// SignerState holds the five ephemeral secret scalars drawn in Prepare. It is
// single-shot: Presign consumes it exactly once and wipes it, and a state
// value must never be reused across two sessions — reusing u leaks the
// signing key, since Presign computes r = u - c*scalar for a distinct
// challenge c each time it would be called.
type SignerState struct {
	d, s1, s2, u, rnd *ristretto255.Scalar
	consumed          bool
}

// zero overwrites the session's secret scalars with zero.
func (s *SignerState) zero() {
	z := ristretto255.NewScalar()
	s.d, s.s1, s.s2, s.u, s.rnd = z, z, z, z, z
}

// Signer holds the secret key material for one ACL issuer.
type Signer struct {
	key *SigningKey
}

// NewSigner wraps a SigningKey for use in the three-party protocol.
func NewSigner(key *SigningKey) *Signer {
	return &Signer{key: key}
}

// Prepare begins a signing session over the given 32-byte commitment
// encoding. It draws five uniform scalars from rand, and returns the
// resulting SignerState (to be passed, unmodified, to Presign) and the
// 128-byte PrepareMessage to send the User.
//
// The returned SignerState must be kept in memory and never logged; it is
// consumed exactly once by Presign.
func (sg *Signer) Prepare(rand io.Reader, commitmentBytes []byte) (*SignerState, []byte, error) {
	c, err := decodePoint(commitmentBytes)
	if err != nil {
		return nil, nil, err
	}

	scalars, err := randomScalars(rand, 5)
	if err != nil {
		return nil, nil, err
	}
	d, s1, s2, u, rnd := scalars[0], scalars[1], scalars[2], scalars[3], scalars[4]

	// z1 = G·rnd + C; z2 = Z - z1.
	z1 := ristretto255.NewIdentityElement().ScalarBaseMult(rnd)
	z1.Add(z1, c)
	z2 := ristretto255.NewIdentityElement().Subtract(groupZ(), z1)

	// A = G·u; B1 = G·s1 + z1·d; B2 = H·s2 + z2·d.
	a := ristretto255.NewIdentityElement().ScalarBaseMult(u)

	b1 := ristretto255.NewIdentityElement().ScalarBaseMult(s1)
	b1.Add(b1, ristretto255.NewIdentityElement().ScalarMult(d, z1))

	b2 := ristretto255.NewIdentityElement().ScalarMult(s2, groupH())
	b2.Add(b2, ristretto255.NewIdentityElement().ScalarMult(d, z2))

	state := &SignerState{d: d, s1: s1, s2: s2, u: u, rnd: rnd}
	msg := &PrepareMessage{A: a, B1: b1, B2: b2, Rnd: rnd}

	return state, msg.Bytes(), nil
}

// Presign consumes state and a 32-byte challenge e to produce the 160-byte
// PreSignature. state must be the value Prepare returned for this session and
// must not have been used before; once Presign has returned a PreSignature,
// state's secrets are wiped and it must be discarded. A challenge that is
// not a canonical scalar returns ErrScalarFormat and leaves state unconsumed.
func (sg *Signer) Presign(state *SignerState, challenge []byte) ([]byte, error) {
	if state.consumed {
		panic("acl: SignerState reused; each session must be single-shot")
	}

	e, err := decodeScalar(challenge)
	if err != nil {
		return nil, err
	}

	// c = e - d; r = u - c*scalar.
	c := ristretto255.NewScalar().Subtract(e, state.d)
	cScalar := ristretto255.NewScalar().Multiply(c, sg.key.scalar)
	r := ristretto255.NewScalar().Subtract(state.u, cScalar)

	ps := &PreSignature{
		C:  c,
		D:  state.d,
		R:  r,
		S1: state.s1,
		S2: state.s2,
	}

	state.consumed = true
	state.zero()

	return ps.Bytes(), nil
}

// randomScalars draws n uniform scalars from rand, each from 32 bytes of
// randomness reduced mod the group order, matching the protocol's stated
// randomness budget of 32 bytes per scalar.
func randomScalars(rand io.Reader, n int) ([]*ristretto255.Scalar, error) {
	out := make([]*ristretto255.Scalar, n)
	var buf [32]byte
	for i := range out {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, err
		}
		out[i] = scalarModOrder(buf[:])
	}
	return out, nil
}
