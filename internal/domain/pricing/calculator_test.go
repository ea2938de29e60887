//go:build unit

package pricing_test

import (
	"testing"

	"beautify-api/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultConfig())

	cases := []struct {
		name string
		base int
		want int
	}{
		{name: "standard base cost", base: 2500, want: 5000},
		{name: "zero base cost", base: 0, want: 0},
		{name: "odd base cost", base: 333, want: 666},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calc.EffectivePrice(c.base)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("negative base cost", func(t *testing.T) {
		_, err := calc.EffectivePrice(-1)
		assert.ErrorIs(t, err, pricing.ErrNegativePrice)
	})

	t.Run("custom multiplier", func(t *testing.T) {
		cfg := pricing.DefaultConfig()
		cfg.Multiplier = 1.5
		got, err := pricing.NewCalculator(cfg).EffectivePrice(1001)
		require.NoError(t, err)
		assert.Equal(t, 1502, got, "half up rounding")
	})
}

func TestDepositAmount(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultConfig())

	cases := []struct {
		name  string
		total int
		want  int
	}{
		{name: "round total", total: 5000, want: 1500},
		{name: "rounds half up", total: 1525, want: 458},
		{name: "zero total", total: 0, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, calc.DepositAmount(c.total))
		})
	}
}

func TestCalculate(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultConfig())
	packagePrice := 2200

	cases := []struct {
		name string
		opts pricing.Options
		want pricing.Breakdown
	}{
		{
			name: "base price only",
			opts: pricing.Options{BasePrice: 1500},
			want: pricing.Breakdown{
				BasePrice: 1500,
				Total:     1500,
				Items:     []pricing.LineItem{{Name: "Base Price", Price: 1500}},
			},
		},
		{
			name: "all add-ons",
			opts: pricing.Options{
				BasePrice:        1500,
				IsHomeService:    true,
				MaterialQuantity: 10,
				ExtraLength:      true,
			},
			want: pricing.Breakdown{
				BasePrice:       1500,
				HomeServiceFee:  200,
				MaterialsCost:   700,
				LengthSurcharge: 100,
				Total:           2500,
				Items: []pricing.LineItem{
					{Name: "Base Price", Price: 1500},
					{Name: "Home Service Fee", Price: 200},
					{Name: "Salon Materials (10 units)", Price: 700},
					{Name: "Extra Length Fee", Price: 100},
				},
			},
		},
		{
			name: "own materials skip the materials line",
			opts: pricing.Options{
				BasePrice:        1500,
				UseOwnMaterials:  true,
				MaterialQuantity: 10,
			},
			want: pricing.Breakdown{
				BasePrice: 1500,
				Total:     1500,
				Items:     []pricing.LineItem{{Name: "Base Price", Price: 1500}},
			},
		},
		{
			name: "package price overrides base",
			opts: pricing.Options{
				BasePrice:    1500,
				PackagePrice: &packagePrice,
				ExtraLength:  true,
			},
			want: pricing.Breakdown{
				BasePrice:       2200,
				LengthSurcharge: 100,
				Total:           2300,
				Items: []pricing.LineItem{
					{Name: "Base Price", Price: 2200},
					{Name: "Extra Length Fee", Price: 100},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calc.Calculate(c.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("negative base price", func(t *testing.T) {
		_, err := calc.Calculate(pricing.Options{BasePrice: -100})
		assert.ErrorIs(t, err, pricing.ErrNegativePrice)
	})

	t.Run("negative material quantity", func(t *testing.T) {
		_, err := calc.Calculate(pricing.Options{BasePrice: 1500, MaterialQuantity: -1})
		assert.ErrorIs(t, err, pricing.ErrNegativeQuantity)
	})
}
