package pricing

import (
	"errors"
	"strings"
)

var ErrUnknownTier = errors.New("unknown package tier")

type TierKey struct {
	Package string
	Size    string
}

// TierTable resolves a package/size pair to a base KSh price. It replaces the
// old price-range string parsing ("1,500-1,800" keyed by a size selector)
// with a table populated at configuration time.
type TierTable struct {
	prices map[TierKey]int
}

func NewTierTable(entries map[TierKey]int) *TierTable {
	prices := make(map[TierKey]int, len(entries))
	for k, v := range entries {
		prices[normalizeKey(k)] = v
	}
	return &TierTable{prices: prices}
}

func (t *TierTable) BasePrice(pkg, size string) (int, error) {
	price, ok := t.prices[normalizeKey(TierKey{Package: pkg, Size: size})]
	if !ok {
		return 0, ErrUnknownTier
	}
	return price, nil
}

func normalizeKey(k TierKey) TierKey {
	return TierKey{
		Package: strings.ToLower(strings.TrimSpace(k.Package)),
		Size:    strings.ToLower(strings.TrimSpace(k.Size)),
	}
}

// DefaultTierTable carries the salon's published package prices.
func DefaultTierTable() *TierTable {
	return NewTierTable(map[TierKey]int{
		{Package: "knotless braids", Size: "large"}:  1500,
		{Package: "knotless braids", Size: "medium"}: 1600,
		{Package: "knotless braids", Size: "small"}:  1800,
		{Package: "french curls", Size: "large"}:     1600,
		{Package: "french curls", Size: "medium"}:    1800,
		{Package: "french curls", Size: "small"}:     2000,
		{Package: "twists", Size: "large"}:           800,
		{Package: "twists", Size: "medium"}:          1000,
		{Package: "twists", Size: "small"}:           1200,
		{Package: "cornrows", Size: "large"}:         300,
		{Package: "cornrows", Size: "medium"}:        500,
		{Package: "cornrows", Size: "small"}:         700,
	})
}
