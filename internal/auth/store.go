package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Role values carried in issued claims
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is a registered identity capable of authenticating.
// Immutable after construction.
type Principal struct {
	Username     string
	PasswordHash string
	Role         string
}

// VerifyPassword checks a plaintext password against the stored bcrypt hash
func (p *Principal) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

// CredentialStore maps a username to its Principal record
type CredentialStore interface {
	Find(username string) (*Principal, bool)
}

// SeedPrincipal is a plaintext seed entry used at store construction
type SeedPrincipal struct {
	Username string
	Password string
	Role     string
}

// DefaultSeedPrincipals returns the demo principals registered at startup
func DefaultSeedPrincipals() []SeedPrincipal {
	return []SeedPrincipal{
		{Username: "admin", Password: "password123", Role: RoleAdmin},
		{Username: "user", Password: "userpass", Role: RoleUser},
	}
}

// memoryStore is a fixed in-process principal directory. Read-only after
// construction, so concurrent lookups need no locking.
type memoryStore struct {
	principals map[string]*Principal
}

// NewMemoryStore hashes the seed passwords and builds the principal directory
func NewMemoryStore(seeds []SeedPrincipal) (CredentialStore, error) {
	principals := make(map[string]*Principal, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", seed.Username, err)
		}
		principals[seed.Username] = &Principal{
			Username:     seed.Username,
			PasswordHash: string(hash),
			Role:         seed.Role,
		}
	}
	return &memoryStore{principals: principals}, nil
}

func (s *memoryStore) Find(username string) (*Principal, bool) {
	p, ok := s.principals[username]
	return p, ok
}
