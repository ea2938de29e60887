//go:build unit

package pricing_test

import (
	"testing"

	"beautify-api/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierTable(t *testing.T) {
	table := pricing.DefaultTierTable()

	t.Run("exact key", func(t *testing.T) {
		price, err := table.BasePrice("knotless braids", "small")
		require.NoError(t, err)
		assert.Equal(t, 1800, price)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		price, err := table.BasePrice("  Knotless Braids ", "SMALL")
		require.NoError(t, err)
		assert.Equal(t, 1800, price)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := table.BasePrice("dreadlocks", "small")
		assert.ErrorIs(t, err, pricing.ErrUnknownTier)
	})

	t.Run("unknown size", func(t *testing.T) {
		_, err := table.BasePrice("twists", "jumbo")
		assert.ErrorIs(t, err, pricing.ErrUnknownTier)
	})
}
