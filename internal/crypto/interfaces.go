package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies login passwords.
// It knows nothing about users, storage or tokens: it only turns a plaintext
// password into a storable hash and checks a candidate against that hash.
//
// Flow:
//
//	startup: hash = Hash(configuredPassword)  (the plaintext is discarded)
//	login:   Verify(hash, submittedPassword)
type PasswordHasher interface {
	// Hash returns a bcrypt hash of password. Every call produces a
	// different hash because bcrypt embeds a random salt.
	Hash(password string) (string, error)

	// Verify compares password with a hash produced by Hash.
	// Returns ErrPasswordMismatch when they do not match, or ErrInvalidHash
	// when hash is not a bcrypt hash.
	Verify(hash, password string) error
}
