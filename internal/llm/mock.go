package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real. Registra los pedidos recibidos.
type MockClient struct {
	Response string
	Err      error

	mu       sync.Mutex
	requests []Request
}

func (m *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.Response, m.Err
}

// Requests devuelve una copia de los pedidos recibidos.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}
