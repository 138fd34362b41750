package acl

import "github.com/gtank/ristretto255"

// Verify checks a Signature against a VerifyingKey, a 64-byte prehashed
// message, and the 32-byte encoding of a BlindedCommitment. It returns nil
// when the signature is valid and an error otherwise.
func Verify(key *VerifyingKey, hashedMessage []byte, blindedCommitmentBytes []byte, signatureBytes []byte) error {
	if len(hashedMessage) != PrehashedMessageSize {
		return ErrCompressedPointFormat
	}

	commitment, err := decodePoint(blindedCommitmentBytes)
	if err != nil {
		return err
	}

	sig, err := decodeSignature(signatureBytes)
	if err != nil {
		return err
	}

	return verifyPrehashed(key, hashedMessage, commitment, sig)
}

// verifyPrehashed is the single pure verification function shared by Verify
// and the User's post-finalisation self-check. blindedCommitment
// is the claimed blinded commitment: when called from Verify this is the
// value decoded from the wire, and when called from the User's self-check
// this is xi1, since a valid issuance yields blindedCommitment == xi1.
func verifyPrehashed(key *VerifyingKey, hashedMessage []byte, blindedCommitment *ristretto255.Element, sig *Signature) error {
	// alpha' = G·rho + pk·omega.
	alpha := ristretto255.NewIdentityElement().ScalarBaseMult(sig.Rho)
	alpha.Add(alpha, ristretto255.NewIdentityElement().ScalarMult(sig.Omega, key.point))

	// beta1' = G·sigma1 + C'·delta.
	beta1 := ristretto255.NewIdentityElement().ScalarBaseMult(sig.Sigma1)
	beta1.Add(beta1, ristretto255.NewIdentityElement().ScalarMult(sig.Delta, blindedCommitment))

	// beta2' = H·sigma2 + (xi - C')·delta.
	xiMinusC := ristretto255.NewIdentityElement().Subtract(sig.Xi, blindedCommitment)
	beta2 := ristretto255.NewIdentityElement().ScalarMult(sig.Sigma2, groupH())
	beta2.Add(beta2, ristretto255.NewIdentityElement().ScalarMult(sig.Delta, xiMinusC))

	// eta' = Z·mu + xi·delta.
	eta := ristretto255.NewIdentityElement().ScalarMult(sig.Mu, groupZ())
	eta.Add(eta, ristretto255.NewIdentityElement().ScalarMult(sig.Delta, sig.Xi))

	epsilon := fiatShamirChallenge(sig.Xi, blindedCommitment, alpha, beta1, beta2, eta, hashedMessage)

	expected := ristretto255.NewScalar().Add(sig.Omega, sig.Delta)
	if epsilon.Equal(expected) != 1 {
		return ErrInvalid
	}
	return nil
}
