package model

// BonusTier is the qualitative bonus level assigned to a player.
// It is a label, not a monetary amount.
type BonusTier int

const (
	// TierBase is the default tier for every position without a dedicated rule.
	TierBase BonusTier = iota

	// TierStandard is assigned to goalkeepers.
	TierStandard

	// TierHigh is assigned to forwards.
	TierHigh
)

// String returns the label announced for the tier.
func (t BonusTier) String() string {
	switch t {
	case TierHigh:
		return "alta"
	case TierStandard:
		return "estándar"
	default:
		return "base"
	}
}
