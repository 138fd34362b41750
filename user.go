package acl

import (
	"io"

	"github.com/gtank/ristretto255"
)

// SignatureSize is the wire size, in bytes, of a Signature: one compressed
// point followed by six scalars.
const SignatureSize = 32 + 6*32

// Signature is the final ACL signature: (xi, rho, omega, sigma1, sigma2, mu,
// delta). It verifies against a BlindedCommitment, not against the original
// Commitment the Signer saw.
type Signature struct {
	Xi     *ristretto255.Element
	Rho    *ristretto255.Scalar
	Omega  *ristretto255.Scalar
	Sigma1 *ristretto255.Scalar
	Sigma2 *ristretto255.Scalar
	Mu     *ristretto255.Scalar
	Delta  *ristretto255.Scalar
}

// Bytes encodes the signature as xi || rho || omega || sigma1 || sigma2 ||
// mu || delta, SignatureSize bytes.
func (s *Signature) Bytes() []byte {
	out := make([]byte, 0, SignatureSize)
	out = append(out, s.Xi.Bytes()...)
	out = append(out, s.Rho.Bytes()...)
	out = append(out, s.Omega.Bytes()...)
	out = append(out, s.Sigma1.Bytes()...)
	out = append(out, s.Sigma2.Bytes()...)
	out = append(out, s.Mu.Bytes()...)
	out = append(out, s.Delta.Bytes()...)
	return out
}

// decodeSignature parses a SignatureSize-byte wire signature.
func decodeSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, ErrCompressedPointFormat
	}

	xi, err := decodePoint(b[0:32])
	if err != nil {
		return nil, err
	}

	scalars := make([]*ristretto255.Scalar, 6)
	for i := range scalars {
		off := 32 + i*32
		s, err := decodeScalar(b[off : off+32])
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}

	return &Signature{
		Xi: xi, Rho: scalars[0], Omega: scalars[1], Sigma1: scalars[2],
		Sigma2: scalars[3], Mu: scalars[4], Delta: scalars[5],
	}, nil
}

// UserState holds the ephemeral secrets of one User signing session: the
// original commitment, the Signer's rnd, a fresh blinding gamma, the derived
// points xi and xi1, and the six scalars tau, t1..t5. Finalise consumes it
// exactly once and wipes it; a UserState must never be reused across two
// sessions, since reusing gamma leaks the blinding relationship between the
// original and blinded commitments.
type UserState struct {
	commitment        *Commitment
	rnd               *ristretto255.Scalar
	gamma             *ristretto255.Scalar
	xi, xi1           *ristretto255.Element
	tau               *ristretto255.Scalar
	t1, t2, t3, t4, t5 *ristretto255.Scalar
	hashedMessage     []byte
	consumed          bool
}

// zero overwrites the session's secret scalars with zero.
func (u *UserState) zero() {
	z := ristretto255.NewScalar()
	u.rnd, u.gamma, u.tau = z, z, z
	u.t1, u.t2, u.t3, u.t4, u.t5 = z, z, z, z, z
}

// User holds the public parameters (the Signer's verifying key) a User needs
// to run its side of the protocol.
type User struct {
	key *VerifyingKey
}

// NewUser wraps a Signer's VerifyingKey for use in the three-party protocol.
func NewUser(key *VerifyingKey) *User {
	return &User{key: key}
}

// Challenge consumes the Signer's 128-byte PrepareMessage and produces the
// 32-byte challenge to send back, along with the UserState to be passed,
// unmodified, to Finalise. hashedMessage must be the 64-byte SHA-512 digest
// of the application message; the protocol never sees the message itself.
func (u *User) Challenge(rand io.Reader, commitment *Commitment, hashedMessage []byte, prepareMessage []byte) (*UserState, []byte, error) {
	if len(hashedMessage) != PrehashedMessageSize {
		return nil, nil, newUserError(ErrCompressedPointFormat)
	}

	msg, err := decodePrepareMessage(prepareMessage)
	if err != nil {
		return nil, nil, newUserError(err)
	}

	if msg.Rnd.Equal(ristretto255.NewScalar()) == 1 {
		return nil, nil, newUserError(ErrRndZero)
	}

	scalars, err := randomScalars(rand, 7)
	if err != nil {
		return nil, nil, newUserError(err)
	}
	gamma, tau, t1, t2, t3, t4, t5 := scalars[0], scalars[1], scalars[2], scalars[3], scalars[4], scalars[5], scalars[6]

	// This is so unlikely (~2^-252) that there is no retry.
	if gamma.Equal(ristretto255.NewScalar()) == 1 {
		return nil, nil, newUserError(ErrGammaZero)
	}

	// z1 = C + G·rnd; xi = Z·gamma; xi1 = z1·gamma; xi2 = xi - xi1.
	z1 := ristretto255.NewIdentityElement().ScalarBaseMult(msg.Rnd)
	z1.Add(z1, commitment.element())

	xi := ristretto255.NewIdentityElement().ScalarMult(gamma, groupZ())
	xi1 := ristretto255.NewIdentityElement().ScalarMult(gamma, z1)
	xi2 := ristretto255.NewIdentityElement().Subtract(xi, xi1)

	eta := ristretto255.NewIdentityElement().ScalarMult(tau, groupZ())

	// alpha = A + G·t1 + pk·t2.
	alpha := ristretto255.NewIdentityElement().Add(msg.A, ristretto255.NewIdentityElement().ScalarBaseMult(t1))
	alpha.Add(alpha, ristretto255.NewIdentityElement().ScalarMult(t2, u.key.point))

	// beta1 = B1·gamma + G·t3 + xi1·t4.
	beta1 := ristretto255.NewIdentityElement().ScalarMult(gamma, msg.B1)
	beta1.Add(beta1, ristretto255.NewIdentityElement().ScalarBaseMult(t3))
	beta1.Add(beta1, ristretto255.NewIdentityElement().ScalarMult(t4, xi1))

	// beta2 = B2·gamma + H·t5 + xi2·t4.
	beta2 := ristretto255.NewIdentityElement().ScalarMult(gamma, msg.B2)
	beta2.Add(beta2, ristretto255.NewIdentityElement().ScalarMult(t5, groupH()))
	beta2.Add(beta2, ristretto255.NewIdentityElement().ScalarMult(t4, xi2))

	epsilon := fiatShamirChallenge(xi, xi1, alpha, beta1, beta2, eta, hashedMessage)

	e := ristretto255.NewScalar().Subtract(epsilon, t2)
	e.Subtract(e, t4)

	state := &UserState{
		commitment: commitment, rnd: msg.Rnd, gamma: gamma,
		xi: xi, xi1: xi1, tau: tau,
		t1: t1, t2: t2, t3: t3, t4: t4, t5: t5,
		hashedMessage: append([]byte(nil), hashedMessage...),
	}

	return state, e.Bytes(), nil
}

// Finalise consumes state and the Signer's 160-byte PreSignature, returning
// the final Signature and the BlindedCommitment it verifies against. state
// must be the value Challenge returned for this session and must not have
// been used before. A presignature that fails to decode returns an error and
// leaves state unconsumed; otherwise state's secrets are wiped before
// Finalise returns and it must be discarded.
//
// Finalise self-verifies the signature it is about to return before handing
// it back; a failure here is reported as an invalid signature and no
// signature is ever returned — the User never hands out a signature it could
// not verify itself.
func (u *User) Finalise(state *UserState, preSignature []byte) (*Signature, *BlindedCommitment, error) {
	if state.consumed {
		panic("acl: UserState reused; each session must be single-shot")
	}

	ps, err := decodePreSignature(preSignature)
	if err != nil {
		return nil, nil, newUserError(err)
	}

	rho := ristretto255.NewScalar().Add(ps.R, state.t1)
	omega := ristretto255.NewScalar().Add(ps.C, state.t2)
	sigma1 := ristretto255.NewScalar().Multiply(ps.S1, state.gamma)
	sigma1.Add(sigma1, state.t3)
	sigma2 := ristretto255.NewScalar().Multiply(ps.S2, state.gamma)
	sigma2.Add(sigma2, state.t5)
	delta := ristretto255.NewScalar().Add(ps.D, state.t4)
	mu := ristretto255.NewScalar().Multiply(delta, state.gamma)
	mu.Negate(mu)
	mu.Add(mu, state.tau)

	sig := &Signature{
		Xi: state.xi, Rho: rho, Omega: omega,
		Sigma1: sigma1, Sigma2: sigma2, Mu: mu, Delta: delta,
	}

	if err := verifyPrehashed(u.key, state.hashedMessage, state.xi1, sig); err != nil {
		state.consumed = true
		state.zero()
		return nil, nil, newUserError(ErrInvalid)
	}

	blinded := &BlindedCommitment{commitment: state.commitment, gamma: state.gamma, rnd: state.rnd}

	state.consumed = true
	state.zero()

	return sig, blinded, nil
}
