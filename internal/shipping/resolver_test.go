package shipping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domain"
)

func TestGetApplicableRates(t *testing.T) {
	t.Run("nil zone or no rates", func(t *testing.T) {
		assert.Empty(t, GetApplicableRates(nil, 10))
		assert.Empty(t, GetApplicableRates(&domain.ShippingZone{}, 10))
	})

	t.Run("filters disabled and sorts by display order", func(t *testing.T) {
		zone := &domain.ShippingZone{Rates: []domain.ShippingZoneRate{
			{ID: 1, MethodName: "Express", RateType: domain.RateTypeFlat, RateAmount: 15, Enabled: true, DisplayOrder: 2},
			{ID: 2, MethodName: "Pickup", RateType: domain.RateTypeFlat, RateAmount: 0, Enabled: false, DisplayOrder: 0},
			{ID: 3, MethodName: "Standard", RateType: domain.RateTypeFlat, RateAmount: 5, Enabled: true, DisplayOrder: 1},
			{ID: 4, MethodName: "Economy", RateType: domain.RateTypeFlat, RateAmount: 3, Enabled: true, DisplayOrder: 1},
		}}
		got := GetApplicableRates(zone, 100)
		require.Len(t, got, 3)
		assert.Equal(t, []int32{3, 4, 1}, []int32{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("free threshold boundary", func(t *testing.T) {
		zone := &domain.ShippingZone{Rates: []domain.ShippingZoneRate{{
			ID: 1, RateType: domain.RateTypeFreeThreshold, RateAmount: 7.5, FreeThreshold: ptr(50.00), Enabled: true,
		}}}

		at := GetApplicableRates(zone, 50.00)
		require.Len(t, at, 1)
		assert.True(t, at[0].IsFree)
		assert.Zero(t, at[0].RateAmount)

		below := GetApplicableRates(zone, 49.99)
		require.Len(t, below, 1)
		assert.False(t, below[0].IsFree)
		assert.Equal(t, 7.5, below[0].RateAmount)
	})

	t.Run("free threshold without threshold is never free", func(t *testing.T) {
		zone := &domain.ShippingZone{Rates: []domain.ShippingZoneRate{{
			ID: 1, RateType: domain.RateTypeFreeThreshold, RateAmount: 6, Enabled: true,
		}}}
		got := GetApplicableRates(zone, 1e9)
		require.Len(t, got, 1)
		assert.False(t, got[0].IsFree)
		assert.Equal(t, 6.0, got[0].RateAmount)
	})

	t.Run("flat rate ignores subtotal", func(t *testing.T) {
		zone := &domain.ShippingZone{Rates: []domain.ShippingZoneRate{{
			ID: 1, RateType: domain.RateTypeFlat, RateAmount: 9.99, FreeThreshold: ptr(10), Enabled: true,
		}}}
		for _, subtotal := range []float64{0, 9.99, 10, 1000, 1e12} {
			got := GetApplicableRates(zone, subtotal)
			require.Len(t, got, 1)
			assert.False(t, got[0].IsFree, "subtotal %v", subtotal)
			assert.Equal(t, 9.99, got[0].RateAmount, "subtotal %v", subtotal)
		}
	})

	t.Run("source rates are untouched", func(t *testing.T) {
		zone := &domain.ShippingZone{Rates: []domain.ShippingZoneRate{
			{ID: 2, RateType: domain.RateTypeFreeThreshold, RateAmount: 4, FreeThreshold: ptr(1), Enabled: true, DisplayOrder: 5},
			{ID: 1, RateType: domain.RateTypeFlat, RateAmount: 8, Enabled: true, DisplayOrder: 0},
		}}
		GetApplicableRates(zone, 10)
		assert.Equal(t, int32(2), zone.Rates[0].ID)
		assert.Equal(t, 4.0, zone.Rates[0].RateAmount)
	})
}

func TestCalculateBestRate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, CalculateBestRate(nil))
		assert.Nil(t, CalculateBestRate([]domain.ApplicableRate{}))
	})

	t.Run("free before paid", func(t *testing.T) {
		rates := []domain.ApplicableRate{
			{ID: 1, MethodName: "Flat", RateAmount: 10},
			{ID: 2, MethodName: "Standard", RateAmount: 0, IsFree: true},
		}
		best := CalculateBestRate(rates)
		require.NotNil(t, best)
		assert.Equal(t, int32(2), best.ID)
		assert.Equal(t, int32(1), rates[0].ID, "input order must be preserved")
	})

	t.Run("free wins even against a zero-cost paid rate", func(t *testing.T) {
		rates := []domain.ApplicableRate{
			{ID: 1, RateAmount: 0},
			{ID: 2, RateAmount: 0, IsFree: true},
		}
		assert.Equal(t, int32(2), CalculateBestRate(rates).ID)
	})

	t.Run("cheapest paid rate", func(t *testing.T) {
		rates := []domain.ApplicableRate{
			{ID: 1, RateAmount: 12},
			{ID: 2, RateAmount: 4.99},
			{ID: 3, RateAmount: 7},
		}
		assert.Equal(t, int32(2), CalculateBestRate(rates).ID)
	})

	t.Run("equal rank keeps display order", func(t *testing.T) {
		rates := []domain.ApplicableRate{
			{ID: 5, RateAmount: 3, DisplayOrder: 0},
			{ID: 4, RateAmount: 3, DisplayOrder: 1},
		}
		assert.Equal(t, int32(5), CalculateBestRate(rates).ID)
	})
}

func TestQuoteScenarios(t *testing.T) {
	toronto := domain.Address{City: "Toronto", Province: "Ontario", Country: "Canada"}

	tests := []struct {
		name     string
		addr     domain.Address
		subtotal float64
		wantZone string
		wantBest *domain.ApplicableRate
	}{
		{
			name:     "threshold met in GTA",
			addr:     toronto,
			subtotal: 75,
			wantZone: "GTA",
			wantBest: &domain.ApplicableRate{ID: 11, MethodName: "Standard", RateAmount: 0, IsFree: true},
		},
		{
			name:     "threshold not met in GTA",
			addr:     toronto,
			subtotal: 40,
			wantZone: "GTA",
			wantBest: &domain.ApplicableRate{ID: 11, MethodName: "Standard", RateAmount: 4.99},
		},
		{
			name:     "no zone for the US",
			addr:     domain.Address{Country: "USA"},
			subtotal: 40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := MatchAddressToZone(tt.addr, gtaAndCanada())
			if tt.wantZone == "" {
				assert.Nil(t, zone)
				return
			}
			require.NotNil(t, zone)
			assert.Equal(t, tt.wantZone, zone.Name)

			best := CalculateBestRate(GetApplicableRates(zone, tt.subtotal))
			if diff := cmp.Diff(tt.wantBest, best); diff != "" {
				t.Errorf("best rate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetApplicableRates_Idempotent(t *testing.T) {
	zone := &gtaAndCanada()[0]
	first := GetApplicableRates(zone, 75)
	second := GetApplicableRates(zone, 75)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rates changed between calls (-first +second):\n%s", diff)
	}
}
