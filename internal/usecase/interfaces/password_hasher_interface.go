package interfaces

// IPasswordHasher derives the one-way hash stored in place of a plaintext password.
type IPasswordHasher interface {
	Hash(password string) (string, error)
}
