package bcrypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordUsesConfiguredCost(t *testing.T) {
	hash, err := New().HashPassword("correct horse")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestComparePassword(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)
	hash, err := b.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NoError(t, b.ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, b.ComparePassword(hash, "s3cret-pasS"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestNewWithCostRejectsOutOfRange(t *testing.T) {
	hash, err := NewWithCost(99).HashPassword("password1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestLongPasswordIsTruncated(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)
	long := strings.Repeat("a", 80)

	hash, err := b.HashPassword(long)
	require.NoError(t, err)

	assert.NoError(t, b.ComparePassword(hash, long))
	assert.NoError(t, b.ComparePassword(hash, long[:MaxPasswordBytes]))
	assert.Error(t, b.ComparePassword(hash, long[:MaxPasswordBytes-1]))
}
