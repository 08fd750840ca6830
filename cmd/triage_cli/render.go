package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"triage-assistant/internal/i18n"
)

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// readOptionalInt devuelve nil si la linea esta vacia o no es un numero.
func readOptionalInt(reader *bufio.Reader, prompt string) *int {
	fmt.Print(prompt)
	line := readLine(reader)
	if line == "" {
		return nil
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("  ignored:", line)
		return nil
	}
	return &v
}

// parseSymptoms separa por comas y descarta entradas vacias.
func parseSymptoms(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func render(w io.Writer, catalog *i18n.Catalog, res i18n.LocalizedResult) {
	loc := res.Locale
	fmt.Fprintf(w, "\n== %s ==\n", catalog.Text("triage_results", loc))
	fmt.Fprintf(w, "%s: %s\n", catalog.Text("risk_level", loc), strings.ToUpper(res.RiskLevel))

	fmt.Fprintf(w, "\n%s:\n", catalog.Text("possible_conditions", loc))
	for _, h := range res.PossibleConditions {
		fmt.Fprintf(w, "  - %s (%.0f%%)\n", h.Condition, h.Confidence*100)
	}
	if len(res.PossibleConditions) > 0 && len(res.PossibleConditions[0].RedFlags) > 0 {
		fmt.Fprintln(w, "  !", strings.Join(res.PossibleConditions[0].RedFlags, "; "))
	}

	writeList(w, catalog.Text("self_care", loc), res.SelfCareAdvice)
	writeList(w, catalog.Text("recommended_actions", loc), res.RecommendedActions)
	writeList(w, catalog.Text("doctor_questions", loc), res.DoctorQuestions)
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}
