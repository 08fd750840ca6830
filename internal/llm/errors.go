package llm

import "errors"

var (
	// ErrProviderNotConfigured indica que el proveedor pedido no fue registrado.
	ErrProviderNotConfigured = errors.New("llm provider not configured")

	// ErrEmptyResponse se devuelve cuando el proveedor responde sin contenido.
	ErrEmptyResponse = errors.New("llm empty response")
)
