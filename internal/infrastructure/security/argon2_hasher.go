package security

import (
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/alexedwards/argon2id"
)

var DefaultParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2Hasher stores passwords as argon2id hashes with the parameters
// encoded in the hash itself.
type Argon2Hasher struct {
	params *argon2id.Params
}

var _ interfaces.IPasswordHasher = (*Argon2Hasher)(nil)

func NewArgon2Hasher(params *argon2id.Params) *Argon2Hasher {
	if params == nil {
		params = DefaultParams
	}
	return &Argon2Hasher{params: params}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.params)
}

func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, encodedHash)
}
