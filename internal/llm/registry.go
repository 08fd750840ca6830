package llm

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// RegistryConfig agrupa lo necesario para construir los proveedores conocidos.
type RegistryConfig struct {
	DefaultProvider string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	OllamaBaseURL   string
	OllamaModel     string
}

// Registry resuelve un nombre de proveedor a un Client configurado.
// Se arma al inicio y despues solo se lee.
type Registry struct {
	defaultProvider string
	clients         map[string]Client
}

func NewRegistry(defaultProvider string) *Registry {
	return &Registry{
		defaultProvider: normalizeProvider(defaultProvider),
		clients:         make(map[string]Client),
	}
}

// NewRegistryFromConfig registra openai solo si hay API key; ollama siempre se registra
// porque no requiere credenciales (si no esta corriendo, la llamada falla y se informa como error).
func NewRegistryFromConfig(cfg RegistryConfig, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := NewRegistry(cfg.DefaultProvider)

	openaiClient, err := NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	if err != nil {
		logger.Info("openai provider disabled", zap.Error(err))
	} else {
		r.Register(ProviderOpenAI, openaiClient)
	}
	r.Register(ProviderOllama, NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, nil, logger))

	logger.Info("llm providers registered",
		zap.Strings("providers", r.Names()),
		zap.String("default", r.defaultProvider),
	)
	return r
}

// Register agrega o reemplaza un proveedor. No es seguro llamarlo en paralelo con Get.
func (r *Registry) Register(name string, client Client) {
	r.clients[normalizeProvider(name)] = client
}

// Get devuelve el proveedor pedido; nombre vacio usa el proveedor por defecto.
func (r *Registry) Get(name string) (Client, error) {
	key := normalizeProvider(name)
	if key == "" {
		key = r.defaultProvider
	}
	c, ok := r.clients[key]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", key, ErrProviderNotConfigured)
	}
	return c, nil
}

// Names lista los proveedores registrados en orden alfabetico.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalizeProvider acepta "OpenAI", " ollama " y similares.
func normalizeProvider(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
