package main

import (
	"fmt"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/rulebook"
	"triage-assistant/internal/triage"
)

// Scenario es un caso de control: entrada y lo que se espera del motor.
type Scenario struct {
	Name         string
	Input        domain.SymptomInput
	ExpectedRisk domain.RiskLevel
	// ExpectedTop vacio: no se controla la condicion principal.
	ExpectedTop string
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
}

// defaultScenarios solo usa claves que existen en la tabla incorporada.
func defaultScenarios() []Scenario {
	return []Scenario{
		{Name: "no symptoms", Input: domain.SymptomInput{}, ExpectedRisk: domain.RiskLow, ExpectedTop: triage.FallbackCondition},
		{Name: "unknown symptom", Input: domain.SymptomInput{Symptoms: []string{"xyz123"}}, ExpectedRisk: domain.RiskLow, ExpectedTop: triage.FallbackCondition},
		{Name: "severity only", Input: domain.SymptomInput{Severity: domain.IntPtr(9)}, ExpectedRisk: domain.RiskHigh},
		{Name: "long duration", Input: domain.SymptomInput{DurationDays: domain.IntPtr(10)}, ExpectedRisk: domain.RiskModerate},
		{
			Name:         "fever and cough",
			Input:        domain.SymptomInput{Symptoms: []string{"fever", "cough"}, Severity: domain.IntPtr(5), DurationDays: domain.IntPtr(2)},
			ExpectedRisk: domain.RiskModerate,
			ExpectedTop:  "Influenza (flu)",
		},
		{
			Name:         "russian chest pain",
			Input:        domain.SymptomInput{Symptoms: []string{"боль в груди"}},
			ExpectedRisk: domain.RiskEmergency,
			ExpectedTop:  "Myocardial infarction",
		},
	}
}

// runScenarios corre cada escenario contra el motor.
func runScenarios(engine *triage.Engine, scenarios []Scenario) []checkResult {
	out := make([]checkResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res := engine.Triage(sc.Input)
		r := checkResult{Name: "scenario: " + sc.Name, Passed: true}
		if res.RiskLevel != sc.ExpectedRisk {
			r.Passed = false
			r.Detail = fmt.Sprintf("risk %s, expected %s", res.RiskLevel, sc.ExpectedRisk)
		} else if sc.ExpectedTop != "" && res.PossibleConditions[0].Condition != sc.ExpectedTop {
			r.Passed = false
			r.Detail = fmt.Sprintf("top condition %q, expected %q", res.PossibleConditions[0].Condition, sc.ExpectedTop)
		}
		out = append(out, r)
	}
	return out
}

// checkBook verifica que cada regla dispare con su propia palabra clave,
// que las palabras de emergencia den riesgo emergency y que cada sinonimo apunte a una regla.
func checkBook(book *rulebook.Book, engine *triage.Engine) []checkResult {
	var out []checkResult
	keywords := make(map[string]struct{})
	for _, rule := range book.Rules() {
		keywords[rule.Keyword] = struct{}{}
		res := engine.Triage(domain.SymptomInput{Symptoms: []string{rule.Keyword}})
		r := checkResult{Name: "rule fires: " + rule.Keyword, Passed: true}
		if res.PossibleConditions[0].Condition == triage.FallbackCondition {
			r.Passed = false
			r.Detail = "rule keyword produced the fallback hypothesis"
		}
		out = append(out, r)
	}

	for _, kw := range book.Keywords() {
		if !book.IsEmergency(kw) {
			continue
		}
		res := engine.Triage(domain.SymptomInput{Symptoms: []string{kw}})
		out = append(out, checkResult{
			Name:   "emergency: " + kw,
			Passed: res.RiskLevel == domain.RiskEmergency,
			Detail: "risk " + string(res.RiskLevel),
		})
	}

	for _, syn := range book.Synonyms() {
		if _, ok := keywords[syn.Keyword]; !ok {
			out = append(out, checkResult{
				Name:   "synonym: " + syn.Phrase,
				Passed: false,
				Detail: fmt.Sprintf("maps to %q which has no rule", syn.Keyword),
			})
		}
	}
	return out
}

// missingTranslations lista frases de la tabla sin texto en el idioma pedido.
func missingTranslations(book *rulebook.Book, catalog *i18n.Catalog, loc domain.Locale) []string {
	seen := make(map[string]struct{})
	var missing []string
	check := func(phrase string) {
		if _, ok := seen[phrase]; ok {
			return
		}
		seen[phrase] = struct{}{}
		if !catalog.Has(phrase, loc) {
			missing = append(missing, phrase)
		}
	}
	for _, rule := range book.Rules() {
		for _, c := range rule.Conditions {
			check(c.Name)
		}
		for _, list := range [][]string{rule.Questions, rule.Actions, rule.RedFlags} {
			for _, p := range list {
				check(p)
			}
		}
	}
	return missing
}
