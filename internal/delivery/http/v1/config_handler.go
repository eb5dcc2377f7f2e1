package v1

import (
	"net/http"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/utils"
)

type ConfigHandler struct {
	cache    cache.CacheService
	cacheTTL time.Duration
}

func NewConfigHandler(cache cache.CacheService, cacheTTL time.Duration) *ConfigHandler {
	return &ConfigHandler{cache: cache, cacheTTL: cacheTTL}
}

type ruleTypeInfo struct {
	Value  domain.RuleType `json:"value"`
	Weight int             `json:"weight"`
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if val, found := h.cache.Get(cache.KeyConfigEnums); found {
		utils.WriteJSON(w, http.StatusOK, val)
		return
	}

	ruleTypes := make([]ruleTypeInfo, 0, len(domain.RuleTypes))
	for _, t := range domain.RuleTypes {
		ruleTypes = append(ruleTypes, ruleTypeInfo{Value: t, Weight: t.Weight()})
	}

	response := map[string]interface{}{
		"ruleTypes": ruleTypes,
		"rateTypes": domain.RateTypes,
	}

	h.cache.Set(cache.KeyConfigEnums, response, h.cacheTTL)
	utils.WriteJSON(w, http.StatusOK, response)
}
