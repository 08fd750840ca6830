package domain

// FAQItem es una pregunta frecuente de solo lectura.
type FAQItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}
