package service

import (
	"context"

	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/llm"
)

// LLMErrorPrefix antecede el texto devuelto cuando el proveedor falla.
const LLMErrorPrefix = "LLM error: "

// ProviderResolver resuelve un nombre de proveedor a un cliente LLM.
type ProviderResolver interface {
	Get(name string) (llm.Client, error)
}

// AdviceOptions controla una llamada de consejo. Campos vacios usan los valores por defecto.
type AdviceOptions struct {
	Provider    string
	Model       string
	Temperature *float64
	Language    domain.Locale
}

// AdviceService redacta consejos en prosa con un LLM a partir de un triaje ya calculado.
type AdviceService struct {
	providers          ProviderResolver
	prompts            AdvicePromptBuilder
	logger             *zap.Logger
	defaultTemperature float64
}

func NewAdviceService(providers ProviderResolver, prompts AdvicePromptBuilder, defaultTemperature float64, logger *zap.Logger) *AdviceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdviceService{
		providers:          providers,
		prompts:            prompts,
		logger:             logger,
		defaultTemperature: defaultTemperature,
	}
}

// Generate nunca devuelve error: sin proveedor configurado devuelve ("", false);
// si el proveedor falla devuelve el texto "LLM error: ..." con ok=true. Una sola llamada, sin reintentos.
func (s *AdviceService) Generate(ctx context.Context, in domain.SymptomInput, res domain.TriageResult, opts AdviceOptions) (string, bool) {
	if s == nil || s.providers == nil {
		return "", false
	}
	client, err := s.providers.Get(opts.Provider)
	if err != nil {
		s.logger.Debug("advice provider unavailable", zap.String("provider", opts.Provider), zap.Error(err))
		return "", false
	}

	loc := domain.ParseLocale(string(opts.Language), domain.LocaleEN)
	temperature := s.defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	prompt := s.prompts.BuildAdvicePrompt(in, res, loc)
	text, err := client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Model:       opts.Model,
		Temperature: temperature,
	})
	if err != nil {
		s.logger.Warn("advice generation failed",
			zap.String("provider", opts.Provider),
			zap.String("model", opts.Model),
			zap.Error(err),
		)
		return LLMErrorPrefix + err.Error(), true
	}
	if text = cleanAdviceText(text); text == "" {
		s.logger.Warn("advice generation returned only markup", zap.String("provider", opts.Provider))
		return LLMErrorPrefix + llm.ErrEmptyResponse.Error(), true
	}
	return text, true
}
