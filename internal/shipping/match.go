package shipping

import (
	"strings"
	"unicode"

	"storefront-backend/internal/domain"
)

// normalize prepares a free-text field for case-insensitive equality.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// compactPostalCode uppercases a postal code and strips every whitespace
// rune, so "m4c 1a1" and "M4C1A1" compare equal.
func compactPostalCode(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// globMatch reports whether s matches pattern in full, where '*' matches
// any run of characters and everything else is literal.
func globMatch(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return s == pattern
	}

	first, last := parts[0], parts[len(parts)-1]
	if len(s) < len(first)+len(last) || !strings.HasPrefix(s, first) || !strings.HasSuffix(s, last) {
		return false
	}

	rest := s[len(first) : len(s)-len(last)]
	for _, part := range parts[1 : len(parts)-1] {
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}

// MatchPostalCode reports whether postalCode satisfies a postal_code_pattern
// rule value. Both sides are compared uppercased without whitespace. An
// empty postal code never matches.
func MatchPostalCode(pattern, postalCode string) bool {
	code := compactPostalCode(postalCode)
	if code == "" {
		return false
	}
	return globMatch(compactPostalCode(pattern), code)
}

// RuleMatches reports whether a single zone rule accepts the address.
// Unknown rule types and missing address fields never match.
func RuleMatches(rule domain.ShippingZoneRule, addr domain.Address) bool {
	var field string
	switch rule.RuleType {
	case domain.RuleTypeCountry:
		field = addr.Country
	case domain.RuleTypeProvince:
		field = addr.Province
	case domain.RuleTypeCity:
		field = addr.City
	case domain.RuleTypePostalCodePattern:
		return MatchPostalCode(rule.RuleValue, addr.PostalCode)
	default:
		return false
	}

	field = normalize(field)
	return field != "" && field == normalize(rule.RuleValue)
}
