package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/repository"
)

type memoryFAQRepo struct {
	items map[domain.Locale][]domain.FAQItem
	err   error
}

func (m *memoryFAQRepo) List(ctx context.Context, loc domain.Locale) ([]domain.FAQItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[loc], nil
}

func sampleFAQ() *memoryFAQRepo {
	return &memoryFAQRepo{items: map[domain.Locale][]domain.FAQItem{
		domain.LocaleEN: {
			{Question: "Flu or cold?", Answer: "Flu starts suddenly.", Tags: []string{"flu", "cold"}},
			{Question: "Paracetamol dosing", Answer: "Follow the package.", Tags: []string{"paracetamol"}},
			{Question: "Flu and paracetamol", Answer: "Paracetamol lowers fever in flu.", Tags: []string{"flu", "paracetamol"}},
			{Question: "Rash", Answer: "Avoid irritants.", Tags: []string{"allergy"}},
		},
	}}
}

func TestFAQService_Search(t *testing.T) {
	svc := NewFAQService(sampleFAQ(), zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"empty query returns first items", "", 2, []string{"Flu or cold?", "Paracetamol dosing"}},
		{"blank query matches nothing", "   ", 2, []string{}},
		{"single token keeps order", "paracetamol", 10, []string{"Paracetamol dosing", "Flu and paracetamol"}},
		{"more tokens rank first", "FLU paracetamol", 10, []string{"Flu and paracetamol", "Flu or cold?", "Paracetamol dosing"}},
		{"tags are searched", "allergy", 10, []string{"Rash"}},
		{"no match", "xyz", 10, []string{}},
		{"limit applies after ranking", "flu paracetamol", 1, []string{"Flu and paracetamol"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tc.query, domain.LocaleEN, tc.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d items, got %d: %+v", len(tc.want), len(got), got)
			}
			for i, q := range tc.want {
				if got[i].Question != q {
					t.Fatalf("position %d: expected %q, got %q", i, q, got[i].Question)
				}
			}
		})
	}
}

func TestFAQService_DefaultLimit(t *testing.T) {
	items := make([]domain.FAQItem, 15)
	for i := range items {
		items[i] = domain.FAQItem{Question: "q", Answer: "a"}
	}
	svc := NewFAQService(&memoryFAQRepo{items: map[domain.Locale][]domain.FAQItem{domain.LocaleEN: items}}, nil)
	got, err := svc.Search(context.Background(), "", domain.LocaleEN, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultFAQLimit {
		t.Fatalf("expected %d items, got %d", DefaultFAQLimit, len(got))
	}
}

func TestFAQService_RepositoryError(t *testing.T) {
	svc := NewFAQService(&memoryFAQRepo{err: errors.New("db down")}, nil)
	if _, err := svc.Search(context.Background(), "flu", domain.LocaleEN, 5); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFAQService_EmbeddedRussian(t *testing.T) {
	repo, err := repository.NewEmbeddedFAQRepository()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc := NewFAQService(repo, nil)
	got, err := svc.Search(context.Background(), "Парацетамол", domain.LocaleRU, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected russian results for paracetamol")
	}
}
