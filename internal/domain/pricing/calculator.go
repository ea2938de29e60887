package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativePrice    = errors.New("base price cannot be negative")
	ErrNegativeQuantity = errors.New("material quantity cannot be negative")
)

// Config is the pricing regime, loaded once at startup and never mutated.
// All amounts are whole KSh.
type Config struct {
	Multiplier          float64
	DepositPercent      float64
	HomeServiceFee      int
	MaterialCostPerUnit int
	ExtraLengthFee      int
}

func DefaultConfig() Config {
	return Config{
		Multiplier:          2,
		DepositPercent:      0.3,
		HomeServiceFee:      200,
		MaterialCostPerUnit: 70,
		ExtraLengthFee:      100,
	}
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

type Options struct {
	BasePrice        int
	PackagePrice     *int // tier price overrides BasePrice when set
	IsHomeService    bool
	UseOwnMaterials  bool
	MaterialQuantity int
	ExtraLength      bool
}

type LineItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Breakdown is a transient computation result, never persisted.
type Breakdown struct {
	BasePrice       int        `json:"basePrice"`
	HomeServiceFee  int        `json:"homeServiceFee"`
	MaterialsCost   int        `json:"materialsCost"`
	LengthSurcharge int        `json:"lengthSurcharge"`
	Total           int        `json:"totalPrice"`
	Items           []LineItem `json:"items"`
}

// EffectivePrice is the client-facing price derived from a supplier-quoted
// base cost.
func (c *Calculator) EffectivePrice(basePrice int) (int, error) {
	if basePrice < 0 {
		return 0, ErrNegativePrice
	}
	return roundHalfUp(float64(basePrice) * c.cfg.Multiplier), nil
}

// DepositAmount is the up-front fraction of a total; the balance is collected
// separately.
func (c *Calculator) DepositAmount(total int) int {
	return roundHalfUp(float64(total) * c.cfg.DepositPercent)
}

// Calculate produces the itemized breakdown. The base line item is always
// present, add-on items only when non-zero, in fixed order: base, home fee,
// materials, length surcharge. Each term is computed and rounded
// independently; the total is their plain sum.
func (c *Calculator) Calculate(opts Options) (Breakdown, error) {
	base := opts.BasePrice
	if opts.PackagePrice != nil {
		base = *opts.PackagePrice
	}
	if base < 0 {
		return Breakdown{}, ErrNegativePrice
	}
	if opts.MaterialQuantity < 0 {
		return Breakdown{}, ErrNegativeQuantity
	}

	homeServiceFee := 0
	if opts.IsHomeService {
		homeServiceFee = c.cfg.HomeServiceFee
	}

	// Materials are charged only when the client buys them from the salon.
	materialsCost := 0
	if !opts.UseOwnMaterials {
		materialsCost = opts.MaterialQuantity * c.cfg.MaterialCostPerUnit
	}

	lengthSurcharge := 0
	if opts.ExtraLength {
		lengthSurcharge = c.cfg.ExtraLengthFee
	}

	items := []LineItem{{Name: "Base Price", Price: base}}
	if homeServiceFee > 0 {
		items = append(items, LineItem{Name: "Home Service Fee", Price: homeServiceFee})
	}
	if materialsCost > 0 {
		items = append(items, LineItem{
			Name:  fmt.Sprintf("Salon Materials (%d units)", opts.MaterialQuantity),
			Price: materialsCost,
		})
	}
	if lengthSurcharge > 0 {
		items = append(items, LineItem{Name: "Extra Length Fee", Price: lengthSurcharge})
	}

	return Breakdown{
		BasePrice:       base,
		HomeServiceFee:  homeServiceFee,
		MaterialsCost:   materialsCost,
		LengthSurcharge: lengthSurcharge,
		Total:           base + homeServiceFee + materialsCost + lengthSurcharge,
		Items:           items,
	}, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
