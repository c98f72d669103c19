package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := Password("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, Verify("s3cret-pass", hashed))
	assert.False(t, Verify("wrong-pass", hashed))
}

func TestPasswordSaltsEveryHash(t *testing.T) {
	a, err := Password("same-input")
	require.NoError(t, err)
	b, err := Password("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("same-input", a))
	assert.True(t, Verify("same-input", b))
}

func TestPasswordUsesConfiguredCost(t *testing.T) {
	hashed, err := Password("whatever")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestVerifyMalformedStoredHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, Verify("anything", ""))
}
