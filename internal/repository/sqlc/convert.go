package sqlcrepo

import (
	"strconv"
	"time"

	"storefront-backend/db/sqlc"
	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgtype"
)

func numericToFloat64(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	f, _ := n.Float64Value()
	return f.Float64
}

func float64ToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(strconv.FormatFloat(f, 'f', -1, 64))
	return n
}

func float64PtrToNumeric(f *float64) pgtype.Numeric {
	if f == nil {
		return pgtype.Numeric{}
	}
	return float64ToNumeric(*f)
}

func numericToFloat64Ptr(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	f, _ := n.Float64Value()
	val := f.Float64
	return &val
}

func pgtimeToTime(t pgtype.Timestamp) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// --- Mappers ---

func toDomainZone(z sqlc.ShippingZone) domain.ShippingZone {
	return domain.ShippingZone{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		Priority:    z.Priority,
		Enabled:     z.Enabled,
		Rules:       []domain.ShippingZoneRule{},
		Rates:       []domain.ShippingZoneRate{},
		CreatedAt:   pgtimeToTime(z.CreatedAt),
		UpdatedAt:   pgtimeToTime(z.UpdatedAt),
	}
}

func toDomainRule(r sqlc.ShippingZoneRule) domain.ShippingZoneRule {
	return domain.ShippingZoneRule{
		ID:        r.ID,
		ZoneID:    r.ZoneID,
		RuleType:  domain.RuleType(r.RuleType),
		RuleValue: r.RuleValue,
		Position:  r.Position,
	}
}

func toDomainRate(r sqlc.ShippingZoneRate) domain.ShippingZoneRate {
	return domain.ShippingZoneRate{
		ID:            r.ID,
		ZoneID:        r.ZoneID,
		MethodName:    r.MethodName,
		RateType:      domain.RateType(r.RateType),
		RateAmount:    numericToFloat64(r.RateAmount),
		FreeThreshold: numericToFloat64Ptr(r.FreeThreshold),
		Enabled:       r.Enabled,
		DisplayOrder:  r.DisplayOrder,
	}
}

// assembleZones attaches rules and rates to their zones, keeping the zone
// order of zones. Rules and rates for unknown zones are dropped.
func assembleZones(zones []sqlc.ShippingZone, rules []sqlc.ShippingZoneRule, rates []sqlc.ShippingZoneRate) []domain.ShippingZone {
	result := make([]domain.ShippingZone, len(zones))
	index := make(map[int32]int, len(zones))
	for i, z := range zones {
		result[i] = toDomainZone(z)
		index[z.ID] = i
	}

	for _, r := range rules {
		if i, ok := index[r.ZoneID]; ok {
			result[i].Rules = append(result[i].Rules, toDomainRule(r))
		}
	}
	for _, r := range rates {
		if i, ok := index[r.ZoneID]; ok {
			result[i].Rates = append(result[i].Rates, toDomainRate(r))
		}
	}
	return result
}
