package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_RoundTrip(t *testing.T) {
	id, err := Parse(Format("Asha", "4f2c1b7e-aaaa-bbbb-cccc-000000000001"))
	assert.NoError(t, err)
	assert.Equal(t, "Asha", id.Name)
	assert.Equal(t, "4f2c1b7e-aaaa-bbbb-cccc-000000000001", id.OwnerExternalID)
}

func TestParse_URLEncodedToken(t *testing.T) {
	id, err := Parse("Asha%20abc-123")
	assert.NoError(t, err)
	assert.Equal(t, "Asha", id.Name)
	assert.Equal(t, "abc-123", id.OwnerExternalID)
}

func TestParse_MissingToken(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestParse_MalformedToken(t *testing.T) {
	for _, token := range []string{
		"justonepart",
		"three part token",
		" leadingspace",
		"trailingspace ",
	} {
		_, err := Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}
