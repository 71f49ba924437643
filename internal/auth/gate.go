package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Reason explains why a credential check did not authenticate.
type Reason string

const (
	// ReasonNotConfigured means no credential pair was configured, so no
	// login can ever succeed.
	ReasonNotConfigured Reason = "credentials not configured"

	// ReasonBadCredentials means the supplied pair did not match.
	ReasonBadCredentials Reason = "bad credentials"
)

// Result is the outcome of a credential check. Reason is set only when
// Authenticated is false.
type Result struct {
	Authenticated bool
	Reason        Reason
}

// Gate verifies operator logins against the credential pair configured at
// startup. The password is bcrypt-hashed at construction so the plaintext is
// not kept around for the life of the process.
type Gate struct {
	username     string
	passwordHash []byte
	configured   bool
}

// NewGate builds a gate from the configured credentials. An empty username
// or password leaves the gate unconfigured: the server still runs, but every
// login attempt fails.
func NewGate(username, password string) (*Gate, error) {
	if username == "" || password == "" {
		return &Gate{}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	return &Gate{username: username, passwordHash: hash, configured: true}, nil
}

// Verify checks a login attempt. Callers must surface every failure the same
// way; the Reason exists for logging and tests, never for the login page.
func (g *Gate) Verify(username, password string) Result {
	if !g.configured {
		return Result{Reason: ReasonNotConfigured}
	}

	// Check both halves unconditionally so a wrong username costs the same
	// as a wrong password.
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil

	if !usernameOK || !passwordOK {
		return Result{Reason: ReasonBadCredentials}
	}
	return Result{Authenticated: true}
}
