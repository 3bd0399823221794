// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// CredentialHasher defines the interface for password hashing and
// verification.
//
// The two methods deliberately disagree on failure handling: Hash swallows
// primitive errors (logging them and returning an empty string) while
// Compare propagates them. The legacy contract depends on this asymmetry;
// keeping both behind one interface makes a future correction a one-line
// change rather than a scattered fix.
type CredentialHasher interface {
	// Hash generates a salted hash from a plaintext password. A failure of
	// the underlying primitive is logged and yields "".
	Hash(password string) string

	// Compare reports whether the plaintext matches the hash. A plain
	// mismatch is (false, nil); primitive failures such as a malformed hash
	// propagate as errors.
	Compare(password, hash string) (bool, error)
}
