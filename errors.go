package acl

// SigningError is returned by Signer operations, and by Verify and
// DecodeVerifyingKey when an input fails to decode. The error types
// (SigningError, VerifyingError, UserError) are separate so that a caller's
// type switch can tell an Invalid verification, and any failure of a User
// operation, apart from a Signer-side failure, even where the underlying
// conditions share a name.
type SigningError string

const (
	// ErrCompressedPointFormat is returned when a field carrying a
	// compressed Ristretto point, a PrepareMessage, a Signature, or the
	// 64-byte prehashed message is the wrong length.
	ErrCompressedPointFormat SigningError = "acl: compressed Ristretto point is incorrectly formatted"

	// ErrPointDecompression is returned when 32 bytes of the right length
	// do not decode to a valid Ristretto point.
	ErrPointDecompression SigningError = "acl: cannot decompress Ristretto point"

	// ErrScalarFormat is returned when a scalar is not canonically encoded.
	ErrScalarFormat SigningError = "acl: scalar is not canonically formatted"
)

func (e SigningError) Error() string { return string(e) }

// VerifyingError is returned by Verify for Invalid, the case where every
// field decoded but the verification equation does not close. Verify's
// decoding failures are returned as the SigningError values above, not as a
// VerifyingError.
type VerifyingError string

const (
	// ErrInvalid is returned when a signature fails to verify.
	ErrInvalid VerifyingError = "acl: signature is invalid"
)

func (e VerifyingError) Error() string { return string(e) }

// UserError is returned by User operations. It extends SigningError's
// conditions with the two User-side rejection checks (RndZero, GammaZero) and
// wraps a VerifyingError when the User's own self-check over a freshly
// finalised signature fails.
type UserError struct {
	err error
}

const (
	// ErrRndZero is returned when the Signer's prepare message carries a
	// zero rnd scalar.
	ErrRndZero userSentinel = "acl: signer did not generate a non-zero value for rnd"

	// ErrGammaZero is returned on the vanishingly unlikely event that a
	// freshly drawn blinding scalar gamma is zero. There is no retry: the
	// probability is about 2^-252.
	ErrGammaZero userSentinel = "acl: accidentally generated a zero value for gamma"
)

// userSentinel backs the UserError sentinels above; it lets them satisfy
// error directly while still being wrappable into a UserError for a uniform
// return type from the User methods.
type userSentinel string

func (e userSentinel) Error() string { return string(e) }

func (e *UserError) Error() string {
	return e.err.Error()
}

func (e *UserError) Unwrap() error {
	return e.err
}

// newUserError lifts any of SigningError, VerifyingError, or userSentinel
// into a *UserError.
func newUserError(err error) *UserError {
	return &UserError{err: err}
}
