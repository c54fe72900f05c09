package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	hash, err := h.Hash("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", hash)
	assert.NotContains(t, hash, "p1")
	assert.True(t, h.Verify("p1", hash))
	assert.False(t, h.Verify("p2", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	first, err := h.Hash("same password")
	require.NoError(t, err)

	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}

func TestCost(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cost int
		want int
	}{
		{name: "Configured cost", cost: 5, want: 5},
		{name: "Below minimum", cost: 1, want: bcrypt.DefaultCost},
		{name: "Above maximum", cost: 99, want: bcrypt.DefaultCost},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := New(tc.cost)
			assert.Equal(t, tc.want, h.cost)

			if tc.want == bcrypt.DefaultCost {
				return
			}

			hash, err := h.Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cost)
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	assert.False(t, h.Verify("p1", ""))
	assert.False(t, h.Verify("p1", "not-a-bcrypt-hash"))
}

func TestHashTooLong(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxLength))
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", MaxLength+1))
	require.Error(t, err)
}
