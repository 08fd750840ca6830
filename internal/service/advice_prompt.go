package service

import (
	"fmt"
	"strconv"
	"strings"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
)

const maxPromptConditions = 5

type promptTemplate struct {
	intro         string
	symptoms      string
	demographics  string
	ageMissing    string
	sexMissing    string
	numberMissing string
	conditions    string
	selfCare      string
	questions     string
	closing       string
}

var promptTemplates = map[domain.Locale]promptTemplate{
	domain.LocaleEN: {
		intro: "You are a medical assistant. Based on the entered symptoms and heuristic triage, provide polite and clear recommendations in English. " +
			"Add questions to ask a doctor. Avoid definitive diagnoses and state that this is not a substitute for medical care.",
		symptoms:      "Symptoms: %s",
		demographics:  "Age: %s, Sex: %s, Days: %s, Severity (1-10): %s",
		ageMissing:    "n/a",
		sexMissing:    "n/a",
		numberMissing: "n/a",
		conditions:    "Likely conditions: %s",
		selfCare:      "Baseline self-care: %s",
		questions:     "Doctor questions: %s",
		closing:       "Respond in 2-4 short paragraphs and a bulleted list of questions.",
	},
	domain.LocaleRU: {
		intro: "Вы медицинский помощник. На основе введённых симптомов и эвристического триажа сформулируй вежливые и понятные рекомендации на русском. " +
			"Добавь список вопросов врачу. Избегай категоричных диагнозов и укажи, что информация не заменяет визит к врачу.",
		symptoms:      "Симптомы: %s",
		demographics:  "Возраст: %s, Пол: %s, Дней: %s, Тяжесть (1-10): %s",
		ageMissing:    "не указан",
		sexMissing:    "не указан",
		numberMissing: "н/д",
		conditions:    "Вероятные состояния: %s",
		selfCare:      "Базовые советы: %s",
		questions:     "Вопросы врачу: %s",
		closing:       "Сформируй ответ в 2-4 абзацах и маркированном списке вопросов.",
	},
}

// AdvicePromptBuilder arma el prompt del LLM en el idioma pedido.
type AdvicePromptBuilder struct {
	catalog *i18n.Catalog
}

func NewAdvicePromptBuilder(catalog *i18n.Catalog) AdvicePromptBuilder {
	if catalog == nil {
		catalog = i18n.Default()
	}
	return AdvicePromptBuilder{catalog: catalog}
}

// BuildAdvicePrompt incluye sintomas tal como se ingresaron, datos demograficos,
// las 5 condiciones principales y los consejos/preguntas del triaje traducidos.
func (b AdvicePromptBuilder) BuildAdvicePrompt(in domain.SymptomInput, res domain.TriageResult, loc domain.Locale) string {
	tpl, ok := promptTemplates[loc]
	if !ok {
		loc = domain.LocaleEN
		tpl = promptTemplates[domain.LocaleEN]
	}

	conds := make([]string, 0, maxPromptConditions)
	for i, h := range res.PossibleConditions {
		if i == maxPromptConditions {
			break
		}
		conds = append(conds, fmt.Sprintf("%s (%.2f)", b.catalog.Text(h.Condition, loc), h.Confidence))
	}

	sex := tpl.sexMissing
	if in.Sex != nil {
		sex = string(*in.Sex)
	}

	var sb strings.Builder
	sb.WriteString(tpl.intro)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(tpl.symptoms, strings.Join(in.Symptoms, ", ")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(tpl.demographics,
		optionalInt(in.Age, tpl.ageMissing),
		sex,
		optionalInt(in.DurationDays, tpl.numberMissing),
		optionalInt(in.Severity, tpl.numberMissing),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(tpl.conditions, strings.Join(conds, "; ")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(tpl.selfCare, strings.Join(b.catalog.List(res.SelfCareAdvice, loc), "; ")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(tpl.questions, strings.Join(b.catalog.List(res.DoctorQuestions, loc), "; ")))
	sb.WriteString("\n")
	sb.WriteString(tpl.closing)
	return sb.String()
}

func optionalInt(v *int, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}
