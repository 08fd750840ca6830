package repository

import (
	"context"
	"testing"

	"triage-assistant/internal/domain"
)

func TestEmbeddedFAQRepository_List(t *testing.T) {
	repo, err := NewEmbeddedFAQRepository()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	en, err := repo.List(ctx, domain.LocaleEN)
	if err != nil || len(en) == 0 {
		t.Fatalf("expected english items, got %d (%v)", len(en), err)
	}
	ru, err := repo.List(ctx, domain.LocaleRU)
	if err != nil || len(ru) == 0 {
		t.Fatalf("expected russian items, got %d (%v)", len(ru), err)
	}
	if en[0].Question == ru[0].Question {
		t.Fatalf("expected different content per language")
	}
	for _, it := range append(en, ru...) {
		if it.Question == "" || it.Answer == "" {
			t.Fatalf("incomplete item: %+v", it)
		}
	}

	other, _ := repo.List(ctx, domain.Locale("fr"))
	if len(other) != len(en) || other[0].Question != en[0].Question {
		t.Fatalf("expected english fallback for unknown language")
	}
}

func TestEmbeddedFAQRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewEmbeddedFAQRepository()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := repo.List(context.Background(), domain.LocaleEN)
	first[0].Question = "mutated"
	first[0].Tags[0] = "mutated"

	second, _ := repo.List(context.Background(), domain.LocaleEN)
	if second[0].Question == "mutated" || second[0].Tags[0] == "mutated" {
		t.Fatalf("repository leaked internal slices")
	}
}
