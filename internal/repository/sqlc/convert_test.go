package sqlcrepo

import (
	"testing"
	"time"

	"storefront-backend/db/sqlc"
	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericConversions(t *testing.T) {
	assert.Equal(t, 49.99, numericToFloat64(float64ToNumeric(49.99)))
	assert.Zero(t, numericToFloat64(pgtype.Numeric{}))

	assert.Nil(t, numericToFloat64Ptr(float64PtrToNumeric(nil)))
	threshold := 60.0
	got := numericToFloat64Ptr(float64PtrToNumeric(&threshold))
	require.NotNil(t, got)
	assert.Equal(t, 60.0, *got)
}

func TestAssembleZones(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	zones := []sqlc.ShippingZone{
		{ID: 2, Name: "GTA", Priority: 10, Enabled: true, CreatedAt: pgtype.Timestamp{Time: created, Valid: true}},
		{ID: 1, Name: "Canada", Priority: 5, Enabled: true},
	}
	rules := []sqlc.ShippingZoneRule{
		{ID: 10, ZoneID: 1, RuleType: "country", RuleValue: "CA"},
		{ID: 11, ZoneID: 2, RuleType: "city", RuleValue: "Toronto"},
		{ID: 12, ZoneID: 99, RuleType: "city", RuleValue: "Orphan"},
	}
	rates := []sqlc.ShippingZoneRate{
		{ID: 20, ZoneID: 2, MethodName: "Standard", RateType: "free_threshold", RateAmount: float64ToNumeric(4.99), FreeThreshold: float64ToNumeric(60), Enabled: true},
	}

	got := assembleZones(zones, rules, rates)
	require.Len(t, got, 2)

	assert.Equal(t, "GTA", got[0].Name)
	assert.Equal(t, created, got[0].CreatedAt)
	require.Len(t, got[0].Rules, 1)
	assert.Equal(t, domain.RuleTypeCity, got[0].Rules[0].RuleType)
	require.Len(t, got[0].Rates, 1)
	assert.Equal(t, domain.RateTypeFreeThreshold, got[0].Rates[0].RateType)
	assert.Equal(t, 4.99, got[0].Rates[0].RateAmount)
	require.NotNil(t, got[0].Rates[0].FreeThreshold)
	assert.Equal(t, 60.0, *got[0].Rates[0].FreeThreshold)

	assert.Equal(t, "Canada", got[1].Name)
	assert.Len(t, got[1].Rules, 1)
	assert.Empty(t, got[1].Rates)
	assert.True(t, got[1].CreatedAt.IsZero())
}
