package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks an admin password candidate. The strategy is
// injected so the constant-compare default can be swapped without touching
// call sites. This is a gate for the dashboard, not a security boundary.
type PasswordVerifier interface {
	Verify(candidate string) bool
}

// StaticVerifier compares against a fixed plaintext password.
type StaticVerifier struct {
	Password string
}

func (v StaticVerifier) Verify(candidate string) bool {
	return candidate == v.Password
}

// BcryptVerifier compares against a bcrypt hash, for deployments that do not
// want the password in plain config.
type BcryptVerifier struct {
	Hash string
}

func (v BcryptVerifier) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(candidate)) == nil
}
