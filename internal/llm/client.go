package llm

import (
	"context"
	"time"
)

// Request es un pedido de generacion de texto de un solo turno.
// Model vacio usa el modelo por defecto del proveedor.
type Request struct {
	Prompt      string
	Model       string
	Temperature float64
}

// Client define la capacidad de generar texto con un LLM.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// defaultTimeout aplica a cada llamada HTTP de los proveedores.
const defaultTimeout = 60 * time.Second

func pickModel(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}
