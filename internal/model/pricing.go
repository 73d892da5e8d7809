package model

type PlanTier string

const (
	PlanTierStandard PlanTier = "standard"
	PlanTierPremium  PlanTier = "premium"
	PlanTierDeluxe   PlanTier = "deluxe"
)

type PricingPlan struct {
	Tier      PlanTier `json:"tier"`
	Name      string   `json:"name"`
	PriceFrom int      `json:"price_from_eur"`
	Features  []string `json:"features"`
	Highlight bool     `json:"highlight"`
}
