package shipping

import "storefront-backend/internal/domain"

// ZoneMatch describes why a zone was chosen.
type ZoneMatch struct {
	Zone          *domain.ShippingZone     `json:"zone"`
	Rule          *domain.ShippingZoneRule `json:"rule"`
	TotalPriority int                      `json:"totalPriority"`
}

// firstMatchingRule returns the first rule of zone that accepts addr.
func firstMatchingRule(zone *domain.ShippingZone, addr domain.Address) *domain.ShippingZoneRule {
	for i := range zone.Rules {
		if RuleMatches(zone.Rules[i], addr) {
			return &zone.Rules[i]
		}
	}
	return nil
}

// MatchDetail finds the best zone for addr and reports the rule that matched
// and the resulting total priority. It returns nil when nothing matches.
//
// Disabled zones and zones without rules are skipped. A zone's total priority
// is its configured priority plus the weight of its first matching rule; the
// highest total wins and ties keep the zone that came first in zones.
func MatchDetail(addr domain.Address, zones []domain.ShippingZone) *ZoneMatch {
	var best *ZoneMatch
	for i := range zones {
		zone := &zones[i]
		if !zone.Enabled || len(zone.Rules) == 0 {
			continue
		}

		rule := firstMatchingRule(zone, addr)
		if rule == nil {
			continue
		}

		total := int(zone.Priority) + rule.RuleType.Weight()
		if best == nil || total > best.TotalPriority {
			best = &ZoneMatch{Zone: zone, Rule: rule, TotalPriority: total}
		}
	}
	return best
}

// MatchAddressToZone returns the zone that should serve addr, or nil.
func MatchAddressToZone(addr domain.Address, zones []domain.ShippingZone) *domain.ShippingZone {
	if m := MatchDetail(addr, zones); m != nil {
		return m.Zone
	}
	return nil
}
