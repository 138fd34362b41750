// Package acl implements Anonymous Credentials Light (ACL), a blind-signing
// protocol over the Ristretto255 prime-order group. A Signer holding a secret
// scalar issues signatures on Pedersen commitments to attribute tuples without
// learning the attributes; the User who built the commitment can later present
// the resulting signature, together with a blinded form of the commitment, to
// any Verifier. The signature is unlinkable: the Signer cannot recognise an
// issued signature when it is later presented.
//
// A full issuance runs in two network turns:
//
//	User:   C := Commit(rand, ids, attrs)
//	Signer: state, m1 := signer.Prepare(rand, C.Bytes())
//	User:   ustate, e := user.Challenge(rand, C, h, m1)
//	Signer: ps := signer.Presign(state, e)
//	User:   sig, blinded := user.Finalise(ustate, ps)
//	Anyone: Verify(pk, h, blinded.Bytes(), sig.Bytes())
//
// Session state values (SignerState, UserState) are single-shot: each is
// consumed exactly once by the operation that follows it, and that operation
// marks the state consumed and wipes its secret fields before returning.
// Reusing a consumed session state leaks key material and must never be done;
// passing a consumed state to Presign or Finalise panics.
//
// This package does not implement disclosure proofs over the committed
// attributes, revocation, threshold signing, or batched verification.
package acl
