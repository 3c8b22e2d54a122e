package usecases

// Listing fee tiers. Amounts are in INR major units; the gateway converts to
// paise on the wire. The free tier activates a listing without payment.
const (
	FeeTierFree     = "free"
	FeeTierStandard = "standard"
	FeeTierPremium  = "premium"
)

// PaymentCurrency is the only currency the gateway account accepts
const PaymentCurrency = "INR"

var feeTierAmounts = map[string]float64{
	FeeTierFree:     0,
	FeeTierStandard: 199,
	FeeTierPremium:  499,
}

// FeeTierAmount returns the listing fee for a tier and whether the tier exists
func FeeTierAmount(tier string) (float64, bool) {
	amount, ok := feeTierAmounts[tier]
	return amount, ok
}

// feeTierFeatured reports whether the tier buys featured placement
func feeTierFeatured(tier string) bool {
	return tier == FeeTierPremium
}
