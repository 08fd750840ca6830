package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"triage-assistant/internal/config"
	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/llm"
	"triage-assistant/internal/logging"
	"triage-assistant/internal/rulebook"
	"triage-assistant/internal/service"
	"triage-assistant/internal/triage"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	book, err := rulebook.Load(cfg.RulesFile)
	if err != nil {
		logger.Fatal("load rules", zap.Error(err))
	}
	engine := triage.NewEngine(book, logger)
	catalog := i18n.Default()
	registry := llm.NewRegistryFromConfig(llm.RegistryConfig{
		DefaultProvider: cfg.LLMProvider,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		OpenAIModel:     cfg.OpenAIModel,
		OllamaBaseURL:   cfg.OllamaBaseURL,
		OllamaModel:     cfg.OllamaModel,
	}, logger)
	adviceSvc := service.NewAdviceService(registry, service.NewAdvicePromptBuilder(catalog), cfg.AITemperature, logger)

	loc := domain.ParseLocale(cfg.DefaultLanguage, domain.LocaleEN)
	fmt.Print("Language / Язык (en/ru): ")
	loc = domain.ParseLocale(readLine(reader), loc)

	fmt.Println("=====", catalog.Text("title", loc), "=====")
	fmt.Println(catalog.Text("disclaimer", loc))

	for {
		in, ok := readInput(reader, catalog, loc)
		if !ok {
			return
		}
		if _, err := domain.NewSymptomInput(in); err != nil {
			fmt.Println(catalog.Text("invalid_input", loc)+":", err)
			continue
		}

		result := engine.TriageSorted(in, catalog.SortKey(loc))
		render(os.Stdout, catalog, catalog.LocalizeResult(result, loc))

		fmt.Print(catalog.Text("ai_recommendations", loc) + "? (y/N): ")
		if answer := strings.ToLower(readLine(reader)); answer == "y" || answer == "д" {
			text, ok := adviceSvc.Generate(ctx, in, result, service.AdviceOptions{Language: loc})
			if !ok {
				fmt.Println(catalog.Text("llm_offline", loc))
			} else {
				fmt.Printf("\n%s:\n%s\n", catalog.Text("ai_recommendations", loc), text)
			}
		}
		fmt.Println()
	}
}

// readInput pide los datos del paciente. Devuelve false si el usuario escribe "q" o cierra stdin.
func readInput(reader *bufio.Reader, catalog *i18n.Catalog, loc domain.Locale) (domain.SymptomInput, bool) {
	fmt.Printf("%s (q = quit): ", catalog.Text("symptoms_csv", loc))
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if (err != nil && line == "") || line == "q" {
		return domain.SymptomInput{}, false
	}

	in := domain.SymptomInput{Symptoms: parseSymptoms(line)}
	in.Age = readOptionalInt(reader, catalog.Text("age", loc)+": ")
	fmt.Print(catalog.Text("sex", loc) + " (male/female/other): ")
	if s := strings.ToLower(readLine(reader)); s != "" {
		sex := domain.Sex(s)
		in.Sex = &sex
	}
	in.DurationDays = readOptionalInt(reader, catalog.Text("duration", loc)+": ")
	in.Severity = readOptionalInt(reader, catalog.Text("severity", loc)+": ")
	fmt.Print(catalog.Text("notes", loc) + ": ")
	in.Notes = readLine(reader)
	return in, true
}
