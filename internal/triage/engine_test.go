package triage

import (
	"reflect"
	"sort"
	"testing"

	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/rulebook"
)

func newTestEngine() *Engine {
	return NewEngine(rulebook.Default(), zap.NewNop())
}

func findCondition(res domain.TriageResult, name string) (domain.ConditionHypothesis, bool) {
	for _, h := range res.PossibleConditions {
		if h.Condition == name {
			return h, true
		}
	}
	return domain.ConditionHypothesis{}, false
}

func TestTriage_EmptySymptomsFallsBack(t *testing.T) {
	res := newTestEngine().Triage(domain.SymptomInput{})

	if res.RiskLevel != domain.RiskLow {
		t.Fatalf("expected low risk, got %s", res.RiskLevel)
	}
	if len(res.PossibleConditions) != 1 {
		t.Fatalf("expected single fallback hypothesis, got %d", len(res.PossibleConditions))
	}
	h := res.PossibleConditions[0]
	if h.Condition != FallbackCondition || h.Confidence != 0.2 || h.Rationale != FallbackRationale {
		t.Fatalf("unexpected fallback hypothesis: %+v", h)
	}
	if !reflect.DeepEqual(h.RecommendedActions, []string{"Observation", "Hydration", "See a doctor if worsening"}) {
		t.Fatalf("unexpected fallback actions: %v", h.RecommendedActions)
	}
	if len(h.RedFlags) != 0 {
		t.Fatalf("expected no red flags on fallback, got %v", h.RedFlags)
	}
	if len(res.DoctorQuestions) != 0 || len(res.RecommendedActions) != 0 {
		t.Fatalf("expected no questions or actions, got %v %v", res.DoctorQuestions, res.RecommendedActions)
	}
	if !reflect.DeepEqual(res.SelfCareAdvice, []string{Disclaimer}) {
		t.Fatalf("expected disclaimer only, got %v", res.SelfCareAdvice)
	}
}

func TestTriage_UnknownSymptomFallsBack(t *testing.T) {
	res := newTestEngine().Triage(domain.SymptomInput{Symptoms: []string{"xyz123"}})
	if len(res.PossibleConditions) != 1 || res.PossibleConditions[0].Confidence != 0.2 {
		t.Fatalf("expected fallback with confidence 0.2, got %+v", res.PossibleConditions)
	}
	if res.PossibleConditions[0].Condition != FallbackCondition {
		t.Fatalf("expected fallback condition, got %s", res.PossibleConditions[0].Condition)
	}
}

func TestTriage_EmergencyKeywordsOverrideEverything(t *testing.T) {
	engine := newTestEngine()
	cases := []domain.SymptomInput{
		{Symptoms: []string{"chest pain"}},
		{Symptoms: []string{"Shortness of breath"}, Severity: domain.IntPtr(1)},
		{Symptoms: []string{"одышка"}, DurationDays: domain.IntPtr(0)},
		{Symptoms: []string{"cough", "боль в груди"}, Severity: domain.IntPtr(9), DurationDays: domain.IntPtr(30)},
	}
	for _, in := range cases {
		res := engine.Triage(in)
		if res.RiskLevel != domain.RiskEmergency {
			t.Fatalf("expected emergency for %v, got %s", in.Symptoms, res.RiskLevel)
		}
		if len(res.SelfCareAdvice) != 2 || res.SelfCareAdvice[0] != Disclaimer || res.SelfCareAdvice[1] != EmergencyCareAdvice {
			t.Fatalf("expected disclaimer plus emergency advice, got %v", res.SelfCareAdvice)
		}
	}
}

func TestTriage_EmergencyRequiresExactSymptom(t *testing.T) {
	// "severe chest pain" dispara la regla por subcadena, pero no es emergencia exacta.
	res := newTestEngine().Triage(domain.SymptomInput{Symptoms: []string{"severe chest pain"}})
	if res.RiskLevel != domain.RiskLow {
		t.Fatalf("expected low risk, got %s", res.RiskLevel)
	}
	if _, ok := findCondition(res, "Myocardial infarction"); !ok {
		t.Fatalf("expected chest pain rule to fire by substring")
	}
}

func TestTriage_RiskLevels(t *testing.T) {
	engine := newTestEngine()
	cases := []struct {
		name string
		in   domain.SymptomInput
		want domain.RiskLevel
	}{
		{"severity nine is high", domain.SymptomInput{Severity: domain.IntPtr(9)}, domain.RiskHigh},
		{"severity eight is high", domain.SymptomInput{Severity: domain.IntPtr(8)}, domain.RiskHigh},
		{"severity five is moderate", domain.SymptomInput{Severity: domain.IntPtr(5)}, domain.RiskModerate},
		{"severity four is low", domain.SymptomInput{Severity: domain.IntPtr(4)}, domain.RiskLow},
		{"week long is moderate", domain.SymptomInput{DurationDays: domain.IntPtr(7)}, domain.RiskModerate},
		{"six days is low", domain.SymptomInput{DurationDays: domain.IntPtr(6)}, domain.RiskLow},
		{"high beats duration", domain.SymptomInput{Severity: domain.IntPtr(10), DurationDays: domain.IntPtr(14)}, domain.RiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Triage(tc.in)
			if res.RiskLevel != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.RiskLevel)
			}
			urgent := len(res.SelfCareAdvice) == 2
			if urgent != tc.want.IsUrgent() {
				t.Fatalf("emergency advice mismatch for %s: %v", tc.want, res.SelfCareAdvice)
			}
		})
	}
}

func TestTriage_FeverAndCoughScenario(t *testing.T) {
	res := newTestEngine().Triage(domain.SymptomInput{
		Symptoms:     []string{"fever", "cough"},
		Severity:     domain.IntPtr(5),
		DurationDays: domain.IntPtr(2),
	})

	if res.RiskLevel != domain.RiskModerate {
		t.Fatalf("expected moderate, got %s", res.RiskLevel)
	}

	flu, ok := findCondition(res, "Influenza (flu)")
	if !ok {
		t.Fatalf("expected influenza among %+v", res.PossibleConditions)
	}
	// fever: 2+1+2+2, cough: 1+2+2+2+1 -> flu 4, total 15
	if flu.Confidence != 4.0/15.0 {
		t.Fatalf("expected flu confidence 4/15, got %v", flu.Confidence)
	}

	if res.PossibleConditions[0].Condition != "Influenza (flu)" || res.PossibleConditions[1].Condition != "COVID-19" {
		t.Fatalf("expected flu then COVID-19 by score and first appearance, got %s, %s",
			res.PossibleConditions[0].Condition, res.PossibleConditions[1].Condition)
	}

	if len(res.DoctorQuestions) != 6 {
		t.Fatalf("expected 6 unique questions from both rules, got %v", res.DoctorQuestions)
	}
	if !sort.StringsAreSorted(res.DoctorQuestions) {
		t.Fatalf("expected sorted questions, got %v", res.DoctorQuestions)
	}

	// Cada hipotesis lleva todas las banderas rojas acumuladas, sin deduplicar.
	wantFlags := []string{">39°C for more than 3 days", "Severe headache and neck stiffness", "Shortness of breath", "Hemoptysis", "Chest pain"}
	if !reflect.DeepEqual(flu.RedFlags, wantFlags) {
		t.Fatalf("unexpected red flags: %v", flu.RedFlags)
	}
	if len(flu.RecommendedActions) != 6 || !sort.StringsAreSorted(flu.RecommendedActions) {
		t.Fatalf("expected top-6 sorted actions per hypothesis, got %v", flu.RecommendedActions)
	}
}

func TestTriage_InvariantsAcrossInputs(t *testing.T) {
	engine := newTestEngine()
	inputs := [][]string{
		nil,
		{"fever", "cough", "sore throat", "headache", "chest pain", "shortness of breath", "abdominal pain", "rash", "diarrhea", "nausea"},
		{"температура", "кашель", "понос"},
		{"жар и кашель, болит живот"},
		{"fever", "fever", "FEVER"},
		{"   ", ""},
	}
	for _, symptoms := range inputs {
		res := engine.Triage(domain.SymptomInput{Symptoms: symptoms})
		if n := len(res.PossibleConditions); n == 0 || n > 8 {
			t.Fatalf("%v: expected 1..8 conditions, got %d", symptoms, n)
		}
		for i, h := range res.PossibleConditions {
			if h.Confidence < 0 || h.Confidence > 1 {
				t.Fatalf("%v: confidence out of range: %+v", symptoms, h)
			}
			if i > 0 && h.Confidence > res.PossibleConditions[i-1].Confidence {
				t.Fatalf("%v: conditions not ranked: %+v", symptoms, res.PossibleConditions)
			}
		}
		assertUniqueSorted(t, res.DoctorQuestions, 10)
		assertUniqueSorted(t, res.RecommendedActions, 8)
		if len(res.SelfCareAdvice) == 0 || res.SelfCareAdvice[0] != Disclaimer {
			t.Fatalf("%v: disclaimer must come first, got %v", symptoms, res.SelfCareAdvice)
		}
	}
}

func TestTriage_AllRulesCapsLists(t *testing.T) {
	res := newTestEngine().Triage(domain.SymptomInput{Symptoms: []string{
		"fever", "cough", "sore throat", "headache", "chest pain", "shortness of breath", "abdominal pain", "rash", "diarrhea", "nausea",
	}})
	if len(res.PossibleConditions) != 8 {
		t.Fatalf("expected 8 conditions, got %d", len(res.PossibleConditions))
	}
	if len(res.DoctorQuestions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(res.DoctorQuestions))
	}
	if len(res.RecommendedActions) != 8 {
		t.Fatalf("expected 8 actions, got %d", len(res.RecommendedActions))
	}
}

func TestTriage_Idempotent(t *testing.T) {
	engine := newTestEngine()
	in := domain.SymptomInput{Symptoms: []string{"headache", "nausea", "rash"}, Severity: domain.IntPtr(6)}
	first := engine.Triage(in)
	second := engine.Triage(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\n%+v\n%+v", first, second)
	}
}

func TestTriage_ResultsDoNotShareSlices(t *testing.T) {
	res := newTestEngine().Triage(domain.SymptomInput{Symptoms: []string{"fever", "rash"}})
	if len(res.PossibleConditions) < 2 {
		t.Fatalf("expected several hypotheses")
	}
	res.PossibleConditions[0].RedFlags[0] = "mutated"
	if res.PossibleConditions[1].RedFlags[0] == "mutated" {
		t.Fatalf("hypotheses must not share red flag slices")
	}
}

func assertUniqueSorted(t *testing.T, items []string, limit int) {
	t.Helper()
	if len(items) > limit {
		t.Fatalf("expected at most %d items, got %d", limit, len(items))
	}
	if !sort.StringsAreSorted(items) {
		t.Fatalf("expected sorted items, got %v", items)
	}
	seen := make(map[string]struct{}, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			t.Fatalf("duplicate item %q in %v", s, items)
		}
		seen[s] = struct{}{}
	}
}

func TestTriageSorted_OrdersAndCapsByKey(t *testing.T) {
	e := newTestEngine()
	in := domain.SymptomInput{Symptoms: []string{"fever", "cough", "sore throat", "headache"}}

	// invierte el orden alfabetico: la Z pasa primero
	reverse := func(s string) string {
		r := []rune(s)
		for i, c := range r {
			r[i] = 'z' - (c - 'a')
		}
		return string(r)
	}
	res := e.TriageSorted(in, reverse)

	canonical := e.Triage(in)
	if len(res.DoctorQuestions) != 10 || len(canonical.DoctorQuestions) != 10 {
		t.Fatalf("expected capped question lists, got %d and %d", len(res.DoctorQuestions), len(canonical.DoctorQuestions))
	}
	keys := make([]string, len(res.DoctorQuestions))
	for i, q := range res.DoctorQuestions {
		keys[i] = reverse(q)
	}
	if !sort.StringsAreSorted(keys) {
		t.Fatalf("questions not ordered by key: %v", res.DoctorQuestions)
	}
	if reflect.DeepEqual(res.DoctorQuestions, canonical.DoctorQuestions) {
		t.Fatalf("custom key should change the selection: %v", res.DoctorQuestions)
	}
	if !reflect.DeepEqual(e.TriageSorted(in, nil), canonical) {
		t.Fatalf("nil key must match Triage")
	}
}

func TestTriageSorted_DedupesOnKey(t *testing.T) {
	book, err := rulebook.New([]rulebook.Rule{
		{Keyword: "fever", Conditions: []rulebook.ConditionWeight{{Name: "Flu", Weight: 1}}, Questions: []string{"Chills?", "Any chills?"}},
	}, nil, nil)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	same := func(string) string { return "Есть ли озноб?" }
	res := NewEngine(book, nil).TriageSorted(domain.SymptomInput{Symptoms: []string{"fever"}}, same)
	if !reflect.DeepEqual(res.DoctorQuestions, []string{"Chills?"}) {
		t.Fatalf("phrases with the same display text must collapse, got %v", res.DoctorQuestions)
	}
}

func TestTriage_ZeroWeightIsFloored(t *testing.T) {
	book, err := rulebook.New([]rulebook.Rule{
		{Keyword: "rash", Conditions: []rulebook.ConditionWeight{
			{Name: "Allergy", Weight: 3},
			{Name: "Unlikely", Weight: 0},
		}},
	}, nil, nil)
	if err != nil {
		t.Fatalf("zero weight must be accepted: %v", err)
	}
	res := NewEngine(book, nil).Triage(domain.SymptomInput{Symptoms: []string{"rash"}})

	if len(res.PossibleConditions) != 2 {
		t.Fatalf("expected two hypotheses, got %+v", res.PossibleConditions)
	}
	// total = 3 + max(1, 0) = 4
	if got := res.PossibleConditions[0].Confidence; got != 0.75 {
		t.Fatalf("expected 0.75 for Allergy, got %v", got)
	}
	if res.PossibleConditions[1].Condition != "Unlikely" || res.PossibleConditions[1].Confidence != 0 {
		t.Fatalf("unexpected zero weight hypothesis: %+v", res.PossibleConditions[1])
	}
}
