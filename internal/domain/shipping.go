package domain

import (
	"context"
	"time"
)

// RuleType identifies which address field a zone rule inspects.
type RuleType string

const (
	RuleTypeCountry           RuleType = "country"
	RuleTypeProvince          RuleType = "province"
	RuleTypePostalCodePattern RuleType = "postal_code_pattern"
	RuleTypeCity              RuleType = "city"
)

var RuleTypes = []RuleType{
	RuleTypeCountry,
	RuleTypeProvince,
	RuleTypePostalCodePattern,
	RuleTypeCity,
}

// Weight is the specificity bonus added to a zone's priority when a rule of
// this type matches. Unknown types weigh nothing.
func (t RuleType) Weight() int {
	switch t {
	case RuleTypePostalCodePattern:
		return 400
	case RuleTypeCity:
		return 300
	case RuleTypeProvince:
		return 200
	case RuleTypeCountry:
		return 100
	}
	return 0
}

func (t RuleType) Valid() bool {
	return t.Weight() > 0
}

// RateType decides whether a rate can become free.
type RateType string

const (
	RateTypeFlat          RateType = "flat_rate"
	RateTypeFreeThreshold RateType = "free_threshold"
)

var RateTypes = []RateType{
	RateTypeFlat,
	RateTypeFreeThreshold,
}

func (t RateType) Valid() bool {
	return t == RateTypeFlat || t == RateTypeFreeThreshold
}

// Address is the destination a customer is shipping to. All fields are
// free text and may be empty.
type Address struct {
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type ShippingZoneRule struct {
	ID        int32    `json:"id"`
	ZoneID    int32    `json:"zoneId"`
	RuleType  RuleType `json:"ruleType"`
	RuleValue string   `json:"ruleValue"`
	Position  int32    `json:"position"`
}

type ShippingZoneRate struct {
	ID            int32    `json:"id"`
	ZoneID        int32    `json:"zoneId"`
	MethodName    string   `json:"methodName"`
	RateType      RateType `json:"rateType"`
	RateAmount    float64  `json:"rateAmount"`
	FreeThreshold *float64 `json:"freeThreshold"`
	Enabled       bool     `json:"enabled"`
	DisplayOrder  int32    `json:"displayOrder"`
}

type ShippingZone struct {
	ID          int32              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Priority    int32              `json:"priority"`
	Enabled     bool               `json:"enabled"`
	Rules       []ShippingZoneRule `json:"rules"`
	Rates       []ShippingZoneRate `json:"rates"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ApplicableRate is a rate as it applies to one particular subtotal.
// RateAmount is 0 when IsFree is set.
type ApplicableRate struct {
	ID           int32   `json:"id"`
	MethodName   string  `json:"methodName"`
	RateAmount   float64 `json:"rateAmount"`
	IsFree       bool    `json:"isFree"`
	DisplayOrder int32   `json:"displayOrder"`
}

type ZoneSummary struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Priority int32  `json:"priority"`
}

// ShippingQuote is the answer to "what does shipping cost here".
// Fallback is set when no configured zone or rate applied and the store's
// default rate was used instead.
type ShippingQuote struct {
	Zone     *ZoneSummary     `json:"zone"`
	Subtotal float64          `json:"subtotal"`
	Rates    []ApplicableRate `json:"rates"`
	BestRate *ApplicableRate  `json:"bestRate"`
	Fallback bool             `json:"fallback"`
}

type ShippingRepository interface {
	ListZones(ctx context.Context) ([]ShippingZone, error)
	ListEnabledZones(ctx context.Context) ([]ShippingZone, error)
	GetZoneByID(ctx context.Context, id int32) (*ShippingZone, error)
	CreateZone(ctx context.Context, zone *ShippingZone) (*ShippingZone, error)
	UpdateZone(ctx context.Context, zone *ShippingZone) (*ShippingZone, error)
	SetZoneEnabled(ctx context.Context, id int32, enabled bool) error
	DeleteZone(ctx context.Context, id int32) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
