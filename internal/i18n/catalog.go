package i18n

import (
	"triage-assistant/internal/domain"
)

// Catalog mapea una clave canonica a sus textos por idioma.
// Las claves son frases del vocabulario canonico (ingles) o identificadores de UI.
type Catalog struct {
	entries     map[string]map[domain.Locale]string
	suggestions map[domain.Locale][]string
}

// NewCatalog construye un catalogo a partir de pares clave -> {idioma -> texto}.
// Los datos se copian; el catalogo no se modifica despues de creado.
func NewCatalog(entries map[string]map[domain.Locale]string, suggestions map[domain.Locale][]string) *Catalog {
	c := &Catalog{
		entries:     make(map[string]map[domain.Locale]string, len(entries)),
		suggestions: make(map[domain.Locale][]string, len(suggestions)),
	}
	for key, byLocale := range entries {
		m := make(map[domain.Locale]string, len(byLocale))
		for loc, text := range byLocale {
			m[loc] = text
		}
		c.entries[key] = m
	}
	for loc, list := range suggestions {
		c.suggestions[loc] = append([]string(nil), list...)
	}
	return c
}

// Text devuelve el texto en el idioma pedido, luego en ingles y por ultimo la clave misma.
func (c *Catalog) Text(key string, loc domain.Locale) string {
	byLocale, ok := c.entries[key]
	if !ok {
		return key
	}
	if text, ok := byLocale[loc]; ok && text != "" {
		return text
	}
	if text, ok := byLocale[domain.LocaleEN]; ok && text != "" {
		return text
	}
	return key
}

// Has indica si la clave tiene texto propio en el idioma, sin fallback.
// Un texto igual a la clave cuenta como traduccion ("COVID-19").
func (c *Catalog) Has(key string, loc domain.Locale) bool {
	text, ok := c.entries[key][loc]
	return ok && text != ""
}

// SortKey devuelve la funcion de orden para el idioma: las listas del triaje se
// ordenan por el texto que se va a mostrar.
func (c *Catalog) SortKey(loc domain.Locale) func(string) string {
	return func(phrase string) string {
		return c.Text(phrase, loc)
	}
}

// List traduce cada elemento conservando el orden.
func (c *Catalog) List(items []string, loc domain.Locale) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = c.Text(item, loc)
	}
	return out
}

// Suggestions devuelve sintomas de ejemplo para el idioma; ingles si no hay lista propia.
func (c *Catalog) Suggestions(loc domain.Locale) []string {
	list, ok := c.suggestions[loc]
	if !ok {
		list = c.suggestions[domain.LocaleEN]
	}
	return append([]string(nil), list...)
}

// RiskLabel traduce un nivel de riesgo.
func (c *Catalog) RiskLabel(r domain.RiskLevel, loc domain.Locale) string {
	return c.Text("risk."+string(r), loc)
}

// LocalizedCondition es una hipotesis lista para mostrar.
type LocalizedCondition struct {
	Condition          string   `json:"condition"`
	Confidence         float64  `json:"confidence"`
	Rationale          string   `json:"rationale"`
	RedFlags           []string `json:"red_flags"`
	RecommendedActions []string `json:"recommended_actions"`
}

// LocalizedResult es una copia de TriageResult traducida para presentacion.
type LocalizedResult struct {
	Locale             domain.Locale        `json:"locale"`
	RiskLevel          string               `json:"risk_level"`
	PossibleConditions []LocalizedCondition `json:"possible_conditions"`
	SelfCareAdvice     []string             `json:"self_care_advice"`
	DoctorQuestions    []string             `json:"doctor_questions"`
	RecommendedActions []string             `json:"recommended_actions"`
}

// LocalizeResult traduce un resultado sin tocar el original. Conserva el orden recibido:
// para listas ordenadas en el idioma destino el triaje debe venir de Engine.TriageSorted con SortKey(loc).
func (c *Catalog) LocalizeResult(res domain.TriageResult, loc domain.Locale) LocalizedResult {
	conds := make([]LocalizedCondition, 0, len(res.PossibleConditions))
	for _, h := range res.PossibleConditions {
		conds = append(conds, LocalizedCondition{
			Condition:          c.Text(h.Condition, loc),
			Confidence:         h.Confidence,
			Rationale:          c.Text(h.Rationale, loc),
			RedFlags:           c.List(h.RedFlags, loc),
			RecommendedActions: c.List(h.RecommendedActions, loc),
		})
	}
	return LocalizedResult{
		Locale:             loc,
		RiskLevel:          c.RiskLabel(res.RiskLevel, loc),
		PossibleConditions: conds,
		SelfCareAdvice:     c.List(res.SelfCareAdvice, loc),
		DoctorQuestions:    c.List(res.DoctorQuestions, loc),
		RecommendedActions: c.List(res.RecommendedActions, loc),
	}
}
