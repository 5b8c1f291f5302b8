package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDeterministic(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	assert.NoError(t, err)

	first, err := a.Derive("user-1")
	assert.NoError(t, err)
	second, err := a.Derive("user-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second, "same user must yield the same pseudonym")
	assert.Len(t, first, pseudonymLength)
}

func TestDeriveDistinctUsers(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	assert.NoError(t, err)

	p1, err := a.Derive("user-1")
	assert.NoError(t, err)
	p2, err := a.Derive("user-2")
	assert.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestDeriveDependsOnSalt(t *testing.T) {
	a1, err := NewAnonymizer("salt-one")
	assert.NoError(t, err)
	a2, err := NewAnonymizer("salt-two")
	assert.NoError(t, err)

	p1, err := a1.Derive("user-1")
	assert.NoError(t, err)
	p2, err := a2.Derive("user-1")
	assert.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestDeriveFailsClosed(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	assert.NoError(t, err)

	_, err = a.Derive("")
	assert.Equal(t, ErrEmptyUserID, err)
}

func TestNewAnonymizerRequiresSalt(t *testing.T) {
	_, err := NewAnonymizer("")
	assert.Equal(t, ErrEmptySalt, err)
}
