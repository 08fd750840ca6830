package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"triage-assistant/internal/domain"
)

//go:embed faqdata/*.json
var faqFiles embed.FS

// FAQRepository entrega las preguntas frecuentes de un idioma, en su orden de publicacion.
type FAQRepository interface {
	List(ctx context.Context, loc domain.Locale) ([]domain.FAQItem, error)
}

// EmbeddedFAQRepository sirve los JSON incluidos en el binario. Idioma desconocido -> ingles.
type EmbeddedFAQRepository struct {
	items map[domain.Locale][]domain.FAQItem
}

func NewEmbeddedFAQRepository() (*EmbeddedFAQRepository, error) {
	items := make(map[domain.Locale][]domain.FAQItem, 2)
	for _, loc := range []domain.Locale{domain.LocaleEN, domain.LocaleRU} {
		raw, err := faqFiles.ReadFile("faqdata/" + string(loc) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read faq %s: %w", loc, err)
		}
		var list []domain.FAQItem
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode faq %s: %w", loc, err)
		}
		items[loc] = list
	}
	return &EmbeddedFAQRepository{items: items}, nil
}

func (r *EmbeddedFAQRepository) List(ctx context.Context, loc domain.Locale) ([]domain.FAQItem, error) {
	list, ok := r.items[loc]
	if !ok {
		list = r.items[domain.LocaleEN]
	}
	out := make([]domain.FAQItem, len(list))
	for i, it := range list {
		out[i] = domain.FAQItem{
			Question: it.Question,
			Answer:   it.Answer,
			Tags:     append([]string(nil), it.Tags...),
		}
	}
	return out, nil
}

// PgFAQRepository lee la tabla faq_items:
//
//	faq_items(id serial, lang text, question text, answer text, tags text[], position int)
type PgFAQRepository struct {
	pool *pgxpool.Pool
}

func NewPgFAQRepository(pool *pgxpool.Pool) *PgFAQRepository {
	return &PgFAQRepository{pool: pool}
}

func (r *PgFAQRepository) List(ctx context.Context, loc domain.Locale) ([]domain.FAQItem, error) {
	const query = `
		SELECT question, answer, COALESCE(tags, '{}')
		FROM faq_items
		WHERE lang = $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, string(loc))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FAQItem
	for rows.Next() {
		var it domain.FAQItem
		if err := rows.Scan(&it.Question, &it.Answer, &it.Tags); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
