package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/service"
	"triage-assistant/internal/triage"
)

const (
	AdviceStatusOK          = "ok"
	AdviceStatusUnavailable = "unavailable"
	AdviceStatusRateLimited = "rate_limited"
	AdviceStatusSkipped     = "skipped"
)

type adviceGenerator interface {
	Generate(ctx context.Context, in domain.SymptomInput, res domain.TriageResult, opts service.AdviceOptions) (string, bool)
}

// TriageHandler expone el motor de triaje y, opcionalmente, el consejo del LLM.
type TriageHandler struct {
	logger        *zap.Logger
	engine        *triage.Engine
	catalog       *i18n.Catalog
	advice        adviceGenerator
	limiter       service.AdviceRateLimiter
	defaultLocale domain.Locale
}

func NewTriageHandler(
	logger *zap.Logger,
	engine *triage.Engine,
	catalog *i18n.Catalog,
	advice adviceGenerator,
	limiter service.AdviceRateLimiter,
	defaultLocale domain.Locale,
) *TriageHandler {
	return &TriageHandler{
		logger:        logger,
		engine:        engine,
		catalog:       catalog,
		advice:        advice,
		limiter:       limiter,
		defaultLocale: domain.ParseLocale(string(defaultLocale), domain.LocaleEN),
	}
}

type adviceRequest struct {
	Enabled     bool     `json:"enabled"`
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature" binding:"omitempty,min=0,max=2"`
	Language    string   `json:"language"`
}

type triageRequest struct {
	domain.SymptomInput
	Advice *adviceRequest `json:"advice,omitempty"`
}

type triageResponse struct {
	Triage       domain.TriageResult  `json:"triage"`
	Localized    i18n.LocalizedResult `json:"localized"`
	Advice       *string              `json:"advice"`
	AdviceStatus string               `json:"advice_status"`
}

// Triage maneja POST /triage?lang=en|ru.
func (h *TriageHandler) Triage(c *gin.Context) {
	var req triageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid triage request", zap.Error(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": bindingDetails(verrs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	input, err := domain.NewSymptomInput(req.SymptomInput)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": verr.Violations})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	loc := domain.ParseLocale(c.Query("lang"), h.defaultLocale)
	result := h.engine.TriageSorted(input, h.catalog.SortKey(loc))

	resp := triageResponse{
		Triage:       result,
		Localized:    h.catalog.LocalizeResult(result, loc),
		AdviceStatus: AdviceStatusSkipped,
	}
	if req.Advice != nil && req.Advice.Enabled {
		resp.Advice, resp.AdviceStatus = h.generateAdvice(c, input, result, *req.Advice, loc)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TriageHandler) generateAdvice(c *gin.Context, in domain.SymptomInput, res domain.TriageResult, req adviceRequest, loc domain.Locale) (*string, string) {
	if h.advice == nil {
		return nil, AdviceStatusUnavailable
	}
	ctx := c.Request.Context()
	if h.limiter != nil && !h.limiter.Allow(ctx, c.ClientIP()) {
		h.logger.Info("advice rate limited", zap.String("client_ip", c.ClientIP()))
		return nil, AdviceStatusRateLimited
	}

	text, ok := h.advice.Generate(ctx, in, res, service.AdviceOptions{
		Provider:    req.Provider,
		Model:       req.Model,
		Temperature: req.Temperature,
		Language:    domain.ParseLocale(req.Language, loc),
	})
	if !ok {
		return nil, AdviceStatusUnavailable
	}
	return &text, AdviceStatusOK
}

// bindingDetails traduce errores del validador de gin a detalles por campo.
func bindingDetails(verrs validator.ValidationErrors) []domain.FieldViolation {
	details := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		reason := "is invalid"
		switch fe.Tag() {
		case "min":
			reason = "must be at least " + fe.Param()
		case "max":
			reason = "must be at most " + fe.Param()
		}
		details = append(details, domain.FieldViolation{Field: fe.Field(), Reason: reason})
	}
	return details
}
