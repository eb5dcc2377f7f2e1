package shipping

import (
	"sort"

	"storefront-backend/internal/domain"
)

// IsFree reports whether rate costs nothing at the given subtotal. Only
// free_threshold rates with a threshold can be free, and only once the
// subtotal reaches it.
func IsFree(rate domain.ShippingZoneRate, subtotal float64) bool {
	return rate.RateType == domain.RateTypeFreeThreshold &&
		rate.FreeThreshold != nil &&
		subtotal >= *rate.FreeThreshold
}

// GetApplicableRates derives the enabled rates of zone for subtotal, in
// ascending display order. A free rate is reported with amount 0.
func GetApplicableRates(zone *domain.ShippingZone, subtotal float64) []domain.ApplicableRate {
	if zone == nil || len(zone.Rates) == 0 {
		return []domain.ApplicableRate{}
	}

	rates := make([]domain.ApplicableRate, 0, len(zone.Rates))
	for _, r := range zone.Rates {
		if !r.Enabled {
			continue
		}
		applied := domain.ApplicableRate{
			ID:           r.ID,
			MethodName:   r.MethodName,
			RateAmount:   r.RateAmount,
			DisplayOrder: r.DisplayOrder,
		}
		if IsFree(r, subtotal) {
			applied.IsFree = true
			applied.RateAmount = 0
		}
		rates = append(rates, applied)
	}

	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].DisplayOrder < rates[j].DisplayOrder
	})
	return rates
}

// CalculateBestRate picks the rate a customer should be offered first: any
// free rate beats any paid one, then the cheaper amount wins. Equal entries
// keep their input order. The input slice is not reordered.
func CalculateBestRate(rates []domain.ApplicableRate) *domain.ApplicableRate {
	if len(rates) == 0 {
		return nil
	}

	ranked := make([]domain.ApplicableRate, len(rates))
	copy(ranked, rates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].IsFree != ranked[j].IsFree {
			return ranked[i].IsFree
		}
		return ranked[i].RateAmount < ranked[j].RateAmount
	})

	best := ranked[0]
	return &best
}
