package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/repository"
)

const DefaultFAQLimit = 10

// FAQService busca en las preguntas frecuentes con un puntaje por tokens.
type FAQService struct {
	repo   repository.FAQRepository
	logger *zap.Logger
}

func NewFAQService(repo repository.FAQRepository, logger *zap.Logger) *FAQService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FAQService{repo: repo, logger: logger}
}

// Search devuelve los primeros limit items si la consulta es "". Si no, puntua cada item
// por la cantidad de tokens de la consulta contenidos en pregunta, respuesta y tags,
// descarta puntaje 0 y ordena de forma estable por puntaje descendente.
func (s *FAQService) Search(ctx context.Context, query string, loc domain.Locale, limit int) ([]domain.FAQItem, error) {
	if limit <= 0 {
		limit = DefaultFAQLimit
	}
	items, err := s.repo.List(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}

	// Solo la consulta vacia lista todo; una de puros espacios no puntua nada.
	if query == "" {
		if len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}

	tokens := strings.Fields(strings.ToLower(query))
	type scored struct {
		score int
		item  domain.FAQItem
	}
	var hits []scored
	for _, it := range items {
		text := strings.ToLower(it.Question + "\n" + it.Answer + "\n" + strings.Join(it.Tags, " "))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{score: score, item: it})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]domain.FAQItem, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.item)
	}
	s.logger.Debug("faq search",
		zap.String("query", query),
		zap.String("lang", string(loc)),
		zap.Int("results", len(out)),
	)
	return out, nil
}
