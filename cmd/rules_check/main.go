package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/rulebook"
	"triage-assistant/internal/triage"
)

const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

func main() {
	_ = godotenv.Load()

	rulesFile := pflag.StringP("rules", "r", os.Getenv("RULES_FILE"), "rule table file (YAML/JSON); empty uses the built-in table")
	lang := pflag.StringP("lang", "l", "ru", "language whose translations are checked")
	skipScenarios := pflag.Bool("skip-scenarios", false, "skip the built-in scenarios (useful for custom tables)")
	pflag.Parse()

	book, err := rulebook.Load(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s[error]%s %v\n", colorRed, colorReset, err)
		os.Exit(2)
	}
	engine := triage.NewEngine(book, nil)

	results := checkBook(book, engine)
	if !*skipScenarios {
		results = append(results, runScenarios(engine, defaultScenarios())...)
	}

	failed := 0
	for _, r := range results {
		if r.Passed {
			fmt.Printf("%s[ok]%s   %s\n", colorGreen, colorReset, r.Name)
			continue
		}
		failed++
		fmt.Printf("%s[fail]%s %s: %s\n", colorRed, colorReset, r.Name, r.Detail)
	}

	loc := domain.ParseLocale(*lang, domain.LocaleRU)
	for _, phrase := range missingTranslations(book, i18n.Default(), loc) {
		fmt.Printf("%s[warn]%s no %s translation for %q\n", colorYellow, colorReset, loc, phrase)
	}

	fmt.Println("==== Resumen ====")
	fmt.Printf("Reglas: %d | Controles: %d | Fallidos: %d\n", len(book.Rules()), len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
