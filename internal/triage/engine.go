package triage

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/rulebook"
)

// Textos canonicos emitidos por el motor. La traduccion vive en el catalogo i18n.
const (
	Disclaimer          = "This is not medical advice. Consult a doctor if in doubt."
	EmergencyCareAdvice = "If symptoms are severe, call an ambulance or seek emergency care."
	MatchRationale      = "Key symptoms matched the rules"
	FallbackCondition   = "Nonspecific symptoms"
	FallbackRationale   = "Not enough rule matches"
	FallbackConfidence  = 0.2
)

// FallbackActions son las acciones de la hipotesis de respaldo.
var FallbackActions = []string{"Observation", "Hydration", "See a doctor if worsening"}

const (
	maxConditions        = 8
	maxDoctorQuestions   = 10
	maxActions           = 8
	maxHypothesisActions = 6

	highSeverity     = 8
	moderateSeverity = 5
	moderateDuration = 7
)

// SortKey devuelve el texto por el que se deduplican, ordenan y recortan preguntas y acciones.
// Con nil se usa el texto canonico.
type SortKey func(phrase string) string

// Engine aplica la tabla de reglas a un SymptomInput. No guarda estado entre llamadas.
type Engine struct {
	book       *rulebook.Book
	normalizer Normalizer
	logger     *zap.Logger
}

func NewEngine(book *rulebook.Book, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		book:       book,
		normalizer: NewNormalizer(book),
		logger:     logger,
	}
}

// Normalize expone la normalizacion usada por Triage.
func (e *Engine) Normalize(symptoms []string) []string {
	return e.normalizer.Normalize(symptoms)
}

// Triage produce exactamente un resultado por entrada. La entrada debe venir validada.
func (e *Engine) Triage(in domain.SymptomInput) domain.TriageResult {
	return e.TriageSorted(in, nil)
}

// TriageSorted es Triage con las listas ordenadas segun key, normalmente el texto
// en el idioma de presentacion. Los recortes (10 preguntas, 8 y 6 acciones) se
// aplican sobre ese orden, asi cada idioma conserva sus primeros elementos.
func (e *Engine) TriageSorted(in domain.SymptomInput, key SortKey) domain.TriageResult {
	if key == nil {
		key = identity
	}
	symptoms := e.normalizer.Normalize(in.Symptoms)

	scores := make(map[string]int)
	var (
		order     []string // condiciones en orden de primera aparicion
		actions   []string
		questions []string
		redFlags  []string
		fired     []string
	)

	for _, rule := range e.book.Rules() {
		if !firesOn(rule.Keyword, symptoms) {
			continue
		}
		fired = append(fired, rule.Keyword)
		for _, c := range rule.Conditions {
			if _, ok := scores[c.Name]; !ok {
				order = append(order, c.Name)
			}
			scores[c.Name] += c.Weight
		}
		actions = append(actions, rule.Actions...)
		questions = append(questions, rule.Questions...)
		redFlags = append(redFlags, rule.RedFlags...)
	}

	risk := e.riskLevel(in, symptoms)

	total := 0
	for _, name := range order {
		total += max(1, scores[name])
	}
	if total == 0 {
		total = 1
	}

	// Orden estable: a igual puntaje se respeta la primera aparicion.
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	if len(ranked) > maxConditions {
		ranked = ranked[:maxConditions]
	}

	hypothesisActions := uniqueSorted(actions, maxHypothesisActions, key)
	hypotheses := make([]domain.ConditionHypothesis, 0, len(ranked))
	for _, name := range ranked {
		hypotheses = append(hypotheses, domain.ConditionHypothesis{
			Condition:          name,
			Confidence:         min(1.0, float64(scores[name])/float64(total)),
			Rationale:          MatchRationale,
			RedFlags:           cloneStrings(redFlags),
			RecommendedActions: cloneStrings(hypothesisActions),
		})
	}
	if len(hypotheses) == 0 {
		hypotheses = append(hypotheses, domain.ConditionHypothesis{
			Condition:          FallbackCondition,
			Confidence:         FallbackConfidence,
			Rationale:          FallbackRationale,
			RedFlags:           []string{},
			RecommendedActions: cloneStrings(FallbackActions),
		})
	}

	selfCare := []string{Disclaimer}
	if risk.IsUrgent() {
		selfCare = append(selfCare, EmergencyCareAdvice)
	}

	e.logger.Debug("triage evaluated",
		zap.Strings("symptoms", symptoms),
		zap.Strings("fired_rules", fired),
		zap.String("risk_level", string(risk)),
		zap.Int("conditions", len(order)),
	)

	return domain.TriageResult{
		RiskLevel:          risk,
		PossibleConditions: hypotheses,
		SelfCareAdvice:     selfCare,
		DoctorQuestions:    uniqueSorted(questions, maxDoctorQuestions, key),
		RecommendedActions: uniqueSorted(actions, maxActions, key),
	}
}

// riskLevel evalua en orden estricto de prioridad; gana la primera coincidencia.
func (e *Engine) riskLevel(in domain.SymptomInput, symptoms []string) domain.RiskLevel {
	for _, s := range symptoms {
		if e.book.IsEmergency(s) {
			return domain.RiskEmergency
		}
	}
	if in.Severity != nil && *in.Severity >= highSeverity {
		return domain.RiskHigh
	}
	if (in.DurationDays != nil && *in.DurationDays >= moderateDuration) ||
		(in.Severity != nil && *in.Severity >= moderateSeverity) {
		return domain.RiskModerate
	}
	return domain.RiskLow
}

// firesOn usa semantica de subcadena: "fever" dispara con "high fever".
func firesOn(keyword string, symptoms []string) bool {
	for _, s := range symptoms {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func identity(s string) string { return s }

// uniqueSorted deduplica por key (gana la primera frase), ordena por key y recorta.
func uniqueSorted(in []string, limit int, key SortKey) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	keys := make(map[string]string, len(in))
	for _, s := range in {
		k := key(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys[s] = k
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return keys[out[i]] < keys[out[j]] })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
