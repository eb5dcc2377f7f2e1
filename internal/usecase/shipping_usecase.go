package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/observability"
	"storefront-backend/internal/shipping"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// SnapshotStorage stores exported zone configuration.
type SnapshotStorage interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// FallbackRate is offered when no configured zone or rate applies.
type FallbackRate struct {
	MethodName string
	Amount     float64
}

// ShippingUsecase serves shipping quotes and manages zone configuration.
type ShippingUsecase struct {
	repo      domain.ShippingRepository
	txManager domain.TransactionManager
	cache     cache.CacheService
	cacheTTL  time.Duration
	fallback  FallbackRate
	metrics   *observability.ShippingMetrics
	snapshots SnapshotStorage
	now       func() time.Time

	// zonesGen is bumped by every write; a refill only lands if it
	// started after the last write.
	mu       sync.Mutex
	zonesGen uint64
}

// ShippingOption customizes a ShippingUsecase.
type ShippingOption func(*ShippingUsecase)

func WithShippingMetrics(m *observability.ShippingMetrics) ShippingOption {
	return func(u *ShippingUsecase) { u.metrics = m }
}

func WithSnapshotStorage(s SnapshotStorage) ShippingOption {
	return func(u *ShippingUsecase) { u.snapshots = s }
}

func WithClock(now func() time.Time) ShippingOption {
	return func(u *ShippingUsecase) { u.now = now }
}

func NewShippingUsecase(repo domain.ShippingRepository, txManager domain.TransactionManager, c cache.CacheService, cacheTTL time.Duration, fallback FallbackRate, opts ...ShippingOption) *ShippingUsecase {
	u := &ShippingUsecase{
		repo:      repo,
		txManager: txManager,
		cache:     c,
		cacheTTL:  cacheTTL,
		fallback:  fallback,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// --- Quotes ---

// Quote resolves the shipping options for addr at subtotal. When nothing
// configured applies the store fallback rate is returned with Fallback set.
func (u *ShippingUsecase) Quote(ctx context.Context, addr domain.Address, subtotal float64) (*domain.ShippingQuote, error) {
	if math.IsNaN(subtotal) || math.IsInf(subtotal, 0) || subtotal < 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSubtotal, subtotal)
	}

	zones, err := u.activeZones(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx)

	match := shipping.MatchDetail(addr, zones)
	if match == nil {
		log.Info().
			Str("country", addr.Country).
			Str("province", addr.Province).
			Str("city", addr.City).
			Msg("Shipping: no zone matched, using fallback rate")
		u.metrics.ObserveQuote(observability.OutcomeNoZone)
		return u.fallbackQuote(nil, subtotal), nil
	}
	u.metrics.ObserveMatch(string(match.Rule.RuleType))

	summary := &domain.ZoneSummary{ID: match.Zone.ID, Name: match.Zone.Name, Priority: match.Zone.Priority}
	rates := shipping.GetApplicableRates(match.Zone, subtotal)
	best := shipping.CalculateBestRate(rates)
	if best == nil {
		log.Warn().
			Int32("zone_id", match.Zone.ID).
			Msg("Shipping: matched zone has no enabled rates, using fallback rate")
		u.metrics.ObserveQuote(observability.OutcomeNoRate)
		return u.fallbackQuote(summary, subtotal), nil
	}

	log.Debug().
		Int32("zone_id", match.Zone.ID).
		Str("rule_type", string(match.Rule.RuleType)).
		Int("total_priority", match.TotalPriority).
		Float64("subtotal", subtotal).
		Float64("best_rate", best.RateAmount).
		Msg("Shipping: quote resolved")

	if best.IsFree {
		u.metrics.ObserveQuote(observability.OutcomeFreeShipping)
	} else {
		u.metrics.ObserveQuote(observability.OutcomeMatched)
	}

	return &domain.ShippingQuote{
		Zone:     summary,
		Subtotal: subtotal,
		Rates:    rates,
		BestRate: best,
	}, nil
}

func (u *ShippingUsecase) fallbackQuote(zone *domain.ZoneSummary, subtotal float64) *domain.ShippingQuote {
	rate := domain.ApplicableRate{
		MethodName: u.fallback.MethodName,
		RateAmount: u.fallback.Amount,
		IsFree:     u.fallback.Amount == 0,
	}
	return &domain.ShippingQuote{
		Zone:     zone,
		Subtotal: subtotal,
		Rates:    []domain.ApplicableRate{rate},
		BestRate: &rate,
		Fallback: true,
	}
}

// activeZones returns the enabled zone set, served from cache when fresh.
// Callers must not modify the returned zones.
func (u *ShippingUsecase) activeZones(ctx context.Context) ([]domain.ShippingZone, error) {
	if val, found := u.cache.Get(cache.KeyActiveShippingZones); found {
		if zones, ok := val.([]domain.ShippingZone); ok {
			u.metrics.ObserveCache(true)
			return zones, nil
		}
	}
	u.metrics.ObserveCache(false)

	u.mu.Lock()
	gen := u.zonesGen
	u.mu.Unlock()

	zones, err := u.repo.ListEnabledZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shipping zones: %w", err)
	}

	u.mu.Lock()
	if u.zonesGen == gen {
		u.cache.Set(cache.KeyActiveShippingZones, zones, u.cacheTTL)
	}
	u.mu.Unlock()
	return zones, nil
}

// DryRunMatch reports which zone addr would match, ignoring the cache.
func (u *ShippingUsecase) DryRunMatch(ctx context.Context, addr domain.Address) (*shipping.ZoneMatch, error) {
	zones, err := u.repo.ListEnabledZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shipping zones: %w", err)
	}
	return shipping.MatchDetail(addr, zones), nil
}

// --- Zone administration ---

func (u *ShippingUsecase) ListZones(ctx context.Context) ([]domain.ShippingZone, error) {
	zones, err := u.repo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping zones: %w", err)
	}
	return zones, nil
}

func (u *ShippingUsecase) GetZone(ctx context.Context, id int32) (*domain.ShippingZone, error) {
	return u.repo.GetZoneByID(ctx, id)
}

// ShippingZoneRequest is the admin input for creating or replacing a zone.
type ShippingZoneRequest struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Priority    int32                     `json:"priority"`
	Enabled     *bool                     `json:"enabled"`
	Rules       []ShippingZoneRuleRequest `json:"rules"`
	Rates       []ShippingZoneRateRequest `json:"rates"`
}

type ShippingZoneRuleRequest struct {
	RuleType  string `json:"ruleType"`
	RuleValue string `json:"ruleValue"`
}

type ShippingZoneRateRequest struct {
	MethodName    string   `json:"methodName"`
	RateType      string   `json:"rateType"`
	RateAmount    float64  `json:"rateAmount"`
	FreeThreshold *float64 `json:"freeThreshold"`
	Enabled       *bool    `json:"enabled"`
	DisplayOrder  int32    `json:"displayOrder"`
}

// toZone validates req and builds the zone it describes.
func (req ShippingZoneRequest) toZone() (*domain.ShippingZone, error) {
	var problems []string

	name := strings.TrimSpace(req.Name)
	if name == "" {
		problems = append(problems, "name is required")
	}

	zone := &domain.ShippingZone{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Priority:    req.Priority,
		Enabled:     req.Enabled == nil || *req.Enabled,
		Rules:       make([]domain.ShippingZoneRule, 0, len(req.Rules)),
		Rates:       make([]domain.ShippingZoneRate, 0, len(req.Rates)),
	}

	for i, r := range req.Rules {
		ruleType := domain.RuleType(strings.TrimSpace(r.RuleType))
		value := strings.TrimSpace(r.RuleValue)
		if !ruleType.Valid() {
			problems = append(problems, fmt.Sprintf("rules[%d]: unknown rule type %q", i, r.RuleType))
		}
		if value == "" {
			problems = append(problems, fmt.Sprintf("rules[%d]: value is required", i))
		}
		zone.Rules = append(zone.Rules, domain.ShippingZoneRule{
			RuleType:  ruleType,
			RuleValue: value,
			Position:  int32(i),
		})
	}

	for i, r := range req.Rates {
		rateType := domain.RateType(strings.TrimSpace(r.RateType))
		method := strings.TrimSpace(r.MethodName)
		if method == "" {
			problems = append(problems, fmt.Sprintf("rates[%d]: method name is required", i))
		}
		if !rateType.Valid() {
			problems = append(problems, fmt.Sprintf("rates[%d]: unknown rate type %q", i, r.RateType))
		}
		if r.RateAmount < 0 || math.IsNaN(r.RateAmount) || math.IsInf(r.RateAmount, 0) {
			problems = append(problems, fmt.Sprintf("rates[%d]: rate amount must be a non-negative number", i))
		}
		if r.FreeThreshold != nil && (*r.FreeThreshold < 0 || math.IsNaN(*r.FreeThreshold) || math.IsInf(*r.FreeThreshold, 0)) {
			problems = append(problems, fmt.Sprintf("rates[%d]: free threshold must be a non-negative number", i))
		}
		if rateType == domain.RateTypeFreeThreshold && r.FreeThreshold == nil {
			problems = append(problems, fmt.Sprintf("rates[%d]: free_threshold rates need a threshold", i))
		}
		zone.Rates = append(zone.Rates, domain.ShippingZoneRate{
			MethodName:    method,
			RateType:      rateType,
			RateAmount:    r.RateAmount,
			FreeThreshold: r.FreeThreshold,
			Enabled:       r.Enabled == nil || *r.Enabled,
			DisplayOrder:  r.DisplayOrder,
		})
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidZone, strings.Join(problems, "; "))
	}
	return zone, nil
}

func (u *ShippingUsecase) CreateZone(ctx context.Context, req ShippingZoneRequest) (*domain.ShippingZone, error) {
	zone, err := req.toZone()
	if err != nil {
		return nil, err
	}

	var created *domain.ShippingZone
	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = u.repo.CreateZone(txCtx, zone)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shipping zone: %w", err)
	}

	u.invalidate()
	logger.WithContext(ctx).Info().Int32("zone_id", created.ID).Str("name", created.Name).Msg("Shipping: zone created")
	return created, nil
}

func (u *ShippingUsecase) UpdateZone(ctx context.Context, id int32, req ShippingZoneRequest) (*domain.ShippingZone, error) {
	zone, err := req.toZone()
	if err != nil {
		return nil, err
	}
	zone.ID = id

	var updated *domain.ShippingZone
	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = u.repo.UpdateZone(txCtx, zone)
		return txErr
	})
	if err != nil {
		if errors.Is(err, domain.ErrZoneNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update shipping zone: %w", err)
	}

	u.invalidate()
	logger.WithContext(ctx).Info().Int32("zone_id", id).Msg("Shipping: zone updated")
	return updated, nil
}

func (u *ShippingUsecase) SetZoneEnabled(ctx context.Context, id int32, enabled bool) error {
	if err := u.repo.SetZoneEnabled(ctx, id, enabled); err != nil {
		return err
	}
	u.invalidate()
	logger.WithContext(ctx).Info().Int32("zone_id", id).Bool("enabled", enabled).Msg("Shipping: zone status changed")
	return nil
}

func (u *ShippingUsecase) DeleteZone(ctx context.Context, id int32) error {
	if err := u.repo.DeleteZone(ctx, id); err != nil {
		return err
	}
	u.invalidate()
	logger.WithContext(ctx).Info().Int32("zone_id", id).Msg("Shipping: zone deleted")
	return nil
}

func (u *ShippingUsecase) invalidate() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.zonesGen++
	u.cache.Delete(cache.KeyActiveShippingZones)
}

// --- Snapshots ---

// ZoneSnapshot is the document written by ExportSnapshot.
type ZoneSnapshot struct {
	ID         string                `json:"id"`
	ExportedAt time.Time             `json:"exportedAt"`
	Zones      []domain.ShippingZone `json:"zones"`
}

// ExportSnapshot uploads the full zone configuration as JSON and returns
// its URL.
func (u *ShippingUsecase) ExportSnapshot(ctx context.Context) (string, error) {
	if u.snapshots == nil {
		return "", domain.ErrSnapshotUnavailable
	}

	zones, err := u.repo.ListZones(ctx)
	if err != nil {
		return "", fmt.Errorf("load shipping zones: %w", err)
	}

	now := u.now().UTC()
	snap := ZoneSnapshot{ID: uuid.NewString(), ExportedAt: now, Zones: zones}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf("shipping-snapshots/%s-%s.json", now.Format("20060102T150405Z"), snap.ID[:8])
	url, err := u.snapshots.PutObject(ctx, key, data, "application/json")
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).Info().Str("key", key).Int("zones", len(zones)).Msg("Shipping: snapshot exported")
	return url, nil
}
