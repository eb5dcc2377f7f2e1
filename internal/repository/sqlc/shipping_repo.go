package sqlcrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront-backend/db/sqlc"
	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type shippingRepository struct {
	queries *sqlc.Queries
}

// NewShippingRepository takes a pool in production; any sqlc.DBTX works.
func NewShippingRepository(db sqlc.DBTX) domain.ShippingRepository {
	return &shippingRepository{
		queries: sqlc.New(db),
	}
}

func (r *shippingRepository) ListZones(ctx context.Context) ([]domain.ShippingZone, error) {
	q := GetQueriesFromContext(ctx, r.queries)
	zones, err := q.ListShippingZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipping zones: %w", err)
	}
	return r.withChildren(ctx, q, zones)
}

func (r *shippingRepository) ListEnabledZones(ctx context.Context) ([]domain.ShippingZone, error) {
	q := GetQueriesFromContext(ctx, r.queries)
	zones, err := q.ListEnabledShippingZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled shipping zones: %w", err)
	}
	return r.withChildren(ctx, q, zones)
}

func (r *shippingRepository) withChildren(ctx context.Context, q *sqlc.Queries, zones []sqlc.ShippingZone) ([]domain.ShippingZone, error) {
	if len(zones) == 0 {
		return []domain.ShippingZone{}, nil
	}

	rules, err := q.ListShippingZoneRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipping zone rules: %w", err)
	}
	rates, err := q.ListShippingZoneRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipping zone rates: %w", err)
	}
	return assembleZones(zones, rules, rates), nil
}

func (r *shippingRepository) GetZoneByID(ctx context.Context, id int32) (*domain.ShippingZone, error) {
	q := GetQueriesFromContext(ctx, r.queries)
	return r.loadZone(ctx, q, id)
}

func (r *shippingRepository) loadZone(ctx context.Context, q *sqlc.Queries, id int32) (*domain.ShippingZone, error) {
	z, err := q.GetShippingZoneByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, fmt.Errorf("get shipping zone %d: %w", id, err)
	}

	rules, err := q.ListShippingZoneRulesByZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rules for zone %d: %w", id, err)
	}
	rates, err := q.ListShippingZoneRatesByZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rates for zone %d: %w", id, err)
	}

	zones := assembleZones([]sqlc.ShippingZone{z}, rules, rates)
	return &zones[0], nil
}

// CreateZone inserts the zone with its rules and rates. Callers wanting
// atomicity run it inside TransactionManager.Do.
func (r *shippingRepository) CreateZone(ctx context.Context, zone *domain.ShippingZone) (*domain.ShippingZone, error) {
	q := GetQueriesFromContext(ctx, r.queries)
	z, err := q.CreateShippingZone(ctx, sqlc.CreateShippingZoneParams{
		Name:        zone.Name,
		Description: zone.Description,
		Priority:    zone.Priority,
		Enabled:     zone.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("create shipping zone: %w", err)
	}

	if err := r.insertChildren(ctx, q, z.ID, zone); err != nil {
		return nil, err
	}
	return r.loadZone(ctx, q, z.ID)
}

// UpdateZone overwrites the zone's fields and replaces its rules and rates.
func (r *shippingRepository) UpdateZone(ctx context.Context, zone *domain.ShippingZone) (*domain.ShippingZone, error) {
	q := GetQueriesFromContext(ctx, r.queries)
	_, err := q.UpdateShippingZone(ctx, sqlc.UpdateShippingZoneParams{
		ID:          zone.ID,
		Name:        zone.Name,
		Description: zone.Description,
		Priority:    zone.Priority,
		Enabled:     zone.Enabled,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, fmt.Errorf("update shipping zone %d: %w", zone.ID, err)
	}

	if err := q.DeleteShippingZoneRulesByZone(ctx, zone.ID); err != nil {
		return nil, fmt.Errorf("clear rules for zone %d: %w", zone.ID, err)
	}
	if err := q.DeleteShippingZoneRatesByZone(ctx, zone.ID); err != nil {
		return nil, fmt.Errorf("clear rates for zone %d: %w", zone.ID, err)
	}
	if err := r.insertChildren(ctx, q, zone.ID, zone); err != nil {
		return nil, err
	}
	return r.loadZone(ctx, q, zone.ID)
}

func (r *shippingRepository) insertChildren(ctx context.Context, q *sqlc.Queries, zoneID int32, zone *domain.ShippingZone) error {
	for i, rule := range zone.Rules {
		err := q.CreateShippingZoneRule(ctx, sqlc.CreateShippingZoneRuleParams{
			ZoneID:    zoneID,
			RuleType:  string(rule.RuleType),
			RuleValue: rule.RuleValue,
			Position:  int32(i),
		})
		if err != nil {
			return fmt.Errorf("create rule for zone %d: %w", zoneID, err)
		}
	}

	for _, rate := range zone.Rates {
		err := q.CreateShippingZoneRate(ctx, sqlc.CreateShippingZoneRateParams{
			ZoneID:        zoneID,
			MethodName:    rate.MethodName,
			RateType:      string(rate.RateType),
			RateAmount:    float64ToNumeric(rate.RateAmount),
			FreeThreshold: float64PtrToNumeric(rate.FreeThreshold),
			Enabled:       rate.Enabled,
			DisplayOrder:  rate.DisplayOrder,
		})
		if err != nil {
			return fmt.Errorf("create rate for zone %d: %w", zoneID, err)
		}
	}
	return nil
}

func (r *shippingRepository) SetZoneEnabled(ctx context.Context, id int32, enabled bool) error {
	q := GetQueriesFromContext(ctx, r.queries)
	n, err := q.SetShippingZoneEnabled(ctx, sqlc.SetShippingZoneEnabledParams{ID: id, Enabled: enabled})
	if err != nil {
		return fmt.Errorf("set shipping zone %d enabled: %w", id, err)
	}
	if n == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *shippingRepository) DeleteZone(ctx context.Context, id int32) error {
	q := GetQueriesFromContext(ctx, r.queries)
	n, err := q.DeleteShippingZone(ctx, id)
	if err != nil {
		return fmt.Errorf("delete shipping zone %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}
