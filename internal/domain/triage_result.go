package domain

// RiskLevel es el nivel de riesgo derivado por el motor de triaje.
type RiskLevel string

const (
	RiskLow       RiskLevel = "low"
	RiskModerate  RiskLevel = "moderate"
	RiskHigh      RiskLevel = "high"
	RiskEmergency RiskLevel = "emergency"
)

// IsUrgent indica si el nivel requiere sugerir atencion inmediata.
func (r RiskLevel) IsUrgent() bool {
	return r == RiskHigh || r == RiskEmergency
}

type ConditionHypothesis struct {
	Condition          string   `json:"condition"`
	Confidence         float64  `json:"confidence"` // 0.0 - 1.0, cuota normalizada del peso total
	Rationale          string   `json:"rationale"`
	RedFlags           []string `json:"red_flags"`
	RecommendedActions []string `json:"recommended_actions"`
}

// TriageResult es la salida estructurada de un triaje. Se construye por pedido y no se muta.
type TriageResult struct {
	RiskLevel          RiskLevel             `json:"risk_level"`
	PossibleConditions []ConditionHypothesis `json:"possible_conditions"`
	SelfCareAdvice     []string              `json:"self_care_advice"`
	DoctorQuestions    []string              `json:"doctor_questions"`
	RecommendedActions []string              `json:"recommended_actions"`
}
