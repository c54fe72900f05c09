package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddonsRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		addons []string
		stored string
		want   []string
	}{
		{
			name:   "Ordered list",
			addons: []string{"flowers", "lighting"},
			stored: `["flowers","lighting"]`,
			want:   []string{"flowers", "lighting"},
		},
		{
			name:   "Order is not normalized",
			addons: []string{"lighting", "flowers", "dj"},
			stored: `["lighting","flowers","dj"]`,
			want:   []string{"lighting", "flowers", "dj"},
		},
		{
			name:   "Nil list",
			addons: nil,
			stored: `[]`,
			want:   []string{},
		},
		{
			name:   "Quotes and unicode",
			addons: []string{`"gold" props`, "dhol 🥁"},
			want:   []string{`"gold" props`, "dhol 🥁"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw, err := EncodeAddons(tc.addons)
			require.NoError(t, err)

			if tc.stored != "" {
				assert.Equal(t, tc.stored, raw)
			}

			got, err := DecodeAddons(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeAddonsLegacyValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "null"} {
		got, err := DecodeAddons(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	}

	_, err := DecodeAddons("flowers,lighting")
	require.Error(t, err)
}
