package rulebook

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileBook es la forma en disco de una tabla de reglas (YAML o JSON).
type fileBook struct {
	Rules             []Rule    `mapstructure:"rules"`
	Synonyms          []Synonym `mapstructure:"synonyms"`
	EmergencyKeywords []string  `mapstructure:"emergency_keywords"`
}

// LoadFile lee una tabla alternativa. Si el archivo omite sinonimos o palabras
// de emergencia se usan los valores incorporados.
func LoadFile(path string) (*Book, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	var fb fileBook
	if err := v.Unmarshal(&fb); err != nil {
		return nil, fmt.Errorf("unmarshal rule file: %w", err)
	}
	if len(fb.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s defines no rules", ErrInvalidRule, path)
	}
	if !v.IsSet("synonyms") {
		fb.Synonyms = defaultSynonyms
	}
	if !v.IsSet("emergency_keywords") {
		fb.EmergencyKeywords = defaultEmergencyKeywords
	}

	return New(fb.Rules, fb.Synonyms, fb.EmergencyKeywords)
}

// Load devuelve la tabla incorporada cuando path esta vacio.
func Load(path string) (*Book, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
