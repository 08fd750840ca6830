package triage

import (
	"strings"

	"triage-assistant/internal/rulebook"
)

// Normalizer convierte frases libres o localizadas al vocabulario canonico del Book.
type Normalizer struct {
	book *rulebook.Book
}

func NewNormalizer(book *rulebook.Book) Normalizer {
	return Normalizer{book: book}
}

// Normalize devuelve palabras clave canonicas sin duplicados, en orden de primera aparicion.
// Entradas vacias se ignoran; lo que no coincide con ningun sinonimo pasa tal cual en minusculas.
func (n Normalizer) Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	emit := func(kw string) {
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	for _, r := range raw {
		s := strings.ToLower(strings.TrimSpace(r))
		if s == "" {
			continue
		}
		if kw, ok := n.book.ExactSynonym(s); ok {
			emit(kw)
			continue
		}
		matched := false
		for _, syn := range n.book.Synonyms() {
			if strings.Contains(s, syn.Phrase) {
				emit(syn.Keyword)
				matched = true
			}
		}
		if !matched {
			emit(s)
		}
	}
	return out
}
