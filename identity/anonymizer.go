// Package identity derives the stable pseudonyms that stand in for real
// user ids on help requests and responses. Derivation is one-way: there
// is no decode, ownership is always checked by re-deriving the caller's
// pseudonym and comparing it with the value stored on the resource.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// pseudonymLength is the hex width of a derived id. 32 hex chars keep
// the collision chance negligible while staying short enough to embed
// in every response document.
const pseudonymLength = 32

var (
	ErrEmptySalt   = errors.New("anonymizer salt is not configured")
	ErrEmptyUserID = errors.New("missing real user id")
)

// Anonymizer derives pseudonymous ids from real user ids with a keyed
// one-way hash. Safe for concurrent use.
type Anonymizer struct {
	salt []byte
}

func NewAnonymizer(salt string) (*Anonymizer, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}
	return &Anonymizer{salt: []byte(salt)}, nil
}

// Derive maps a real user id to its pseudonym. The same id always maps
// to the same pseudonym. An absent id fails closed: write operations
// have no anonymous-caller concept.
func (a *Anonymizer) Derive(realUserID string) (string, error) {
	if realUserID == "" {
		return "", ErrEmptyUserID
	}

	mac := hmac.New(sha256.New, a.salt)
	mac.Write([]byte(realUserID))
	return hex.EncodeToString(mac.Sum(nil))[:pseudonymLength], nil
}
