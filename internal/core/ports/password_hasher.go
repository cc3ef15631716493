package ports

// PasswordHasher produces and verifies one-way salted password hashes.
// Hash is non-deterministic (fresh salt per call); Verify recomputes using
// the parameters embedded in the stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
