package game

import "fmt"

// Variant tags the game flavour being played. The pineapple variant is
// a seating constraint (max 3 players), not distinct scoring logic; its
// configuration can also override the royalty schedule.
type Variant string

const (
	// VariantOFC is the standard open-face game, up to 4 players
	VariantOFC Variant = "ofc"
	// VariantPineapple caps the table at 3 players
	VariantPineapple Variant = "pineapple"
)

// VariantConfig is the per-variant configuration record
type VariantConfig struct {
	MaxPlayers int
	// Royalties overrides the default schedule when non-nil
	Royalties *RoyaltySchedule
}

// Config returns the configuration for the variant
func (v Variant) Config() (VariantConfig, error) {
	switch v {
	case VariantOFC:
		return VariantConfig{MaxPlayers: 4}, nil
	case VariantPineapple:
		return VariantConfig{MaxPlayers: 3}, nil
	default:
		return VariantConfig{}, fmt.Errorf("unknown variant %q", v)
	}
}

// Valid reports whether the variant tag is known
func (v Variant) Valid() bool {
	_, err := v.Config()
	return err == nil
}
