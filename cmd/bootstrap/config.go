package bootstrap

import (
	"time"

	"beautify-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation resolves the salon timezone. The fixed-zone fallback keeps the
// app running on images without tzdata.
func NewLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Log.TimeZone)
	if err != nil {
		return time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)
	}
	return loc
}
