package rulebook

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule se devuelve cuando una tabla de reglas no es consistente.
var ErrInvalidRule = errors.New("invalid rule")

// ConditionWeight asocia una condicion con su peso relativo (no es una probabilidad).
type ConditionWeight struct {
	Name   string `mapstructure:"name" json:"name"`
	Weight int    `mapstructure:"weight" json:"weight"`
}

// Rule es la asociacion estatica entre una palabra clave canonica y sus consecuencias.
type Rule struct {
	Keyword    string            `mapstructure:"keyword" json:"keyword"`
	Conditions []ConditionWeight `mapstructure:"conditions" json:"conditions"`
	Questions  []string          `mapstructure:"questions" json:"questions"`
	Actions    []string          `mapstructure:"actions" json:"actions"`
	RedFlags   []string          `mapstructure:"red_flags" json:"red_flags"`
}

// Synonym mapea una frase (en cualquier idioma) a una palabra clave canonica.
type Synonym struct {
	Phrase  string `mapstructure:"phrase" json:"phrase"`
	Keyword string `mapstructure:"keyword" json:"keyword"`
}

// Book agrupa tabla de reglas, sinonimos y palabras clave de emergencia.
// Se carga una vez al arrancar y no se modifica despues; es seguro compartirlo entre goroutines.
type Book struct {
	rules     []Rule
	synonyms  []Synonym
	exact     map[string]string
	emergency map[string]struct{}
}

// New valida y copia los datos recibidos. El orden de reglas y sinonimos se conserva.
func New(rules []Rule, synonyms []Synonym, emergencyKeywords []string) (*Book, error) {
	b := &Book{
		rules:     make([]Rule, 0, len(rules)),
		synonyms:  make([]Synonym, 0, len(synonyms)),
		exact:     make(map[string]string, len(synonyms)),
		emergency: make(map[string]struct{}, len(emergencyKeywords)),
	}

	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("%w: rule %d has empty keyword", ErrInvalidRule, i)
		}
		if _, dup := seen[kw]; dup {
			return nil, fmt.Errorf("%w: duplicate keyword %q", ErrInvalidRule, kw)
		}
		seen[kw] = struct{}{}
		if len(r.Conditions) == 0 {
			return nil, fmt.Errorf("%w: keyword %q has no conditions", ErrInvalidRule, kw)
		}
		conds := make([]ConditionWeight, 0, len(r.Conditions))
		for _, c := range r.Conditions {
			name := strings.TrimSpace(c.Name)
			if name == "" || c.Weight < 0 {
				return nil, fmt.Errorf("%w: keyword %q has condition %q with weight %d", ErrInvalidRule, kw, c.Name, c.Weight)
			}
			conds = append(conds, ConditionWeight{Name: name, Weight: c.Weight})
		}
		b.rules = append(b.rules, Rule{
			Keyword:    kw,
			Conditions: conds,
			Questions:  cloneStrings(r.Questions),
			Actions:    cloneStrings(r.Actions),
			RedFlags:   cloneStrings(r.RedFlags),
		})
	}

	for _, s := range synonyms {
		phrase := strings.ToLower(strings.TrimSpace(s.Phrase))
		kw := strings.ToLower(strings.TrimSpace(s.Keyword))
		if phrase == "" || kw == "" {
			return nil, fmt.Errorf("%w: synonym %q -> %q", ErrInvalidRule, s.Phrase, s.Keyword)
		}
		if _, dup := b.exact[phrase]; dup {
			continue
		}
		b.exact[phrase] = kw
		b.synonyms = append(b.synonyms, Synonym{Phrase: phrase, Keyword: kw})
	}

	for _, kw := range emergencyKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			b.emergency[kw] = struct{}{}
		}
	}

	return b, nil
}

// Rules devuelve las reglas en orden de tabla. No modificar el slice devuelto.
func (b *Book) Rules() []Rule {
	return b.rules
}

// Synonyms devuelve los sinonimos en orden de tabla. No modificar el slice devuelto.
func (b *Book) Synonyms() []Synonym {
	return b.synonyms
}

// ExactSynonym busca una frase ya normalizada (minusculas, sin espacios extremos).
func (b *Book) ExactSynonym(phrase string) (string, bool) {
	kw, ok := b.exact[phrase]
	return kw, ok
}

// IsEmergency indica si el simbolo normalizado es exactamente una palabra clave de emergencia.
func (b *Book) IsEmergency(symptom string) bool {
	_, ok := b.emergency[symptom]
	return ok
}

// Keywords devuelve las palabras clave de la tabla en orden.
func (b *Book) Keywords() []string {
	out := make([]string, 0, len(b.rules))
	for _, r := range b.rules {
		out = append(out, r.Keyword)
	}
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
