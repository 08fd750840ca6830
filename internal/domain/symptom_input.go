package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sex es el sexo biologico declarado por el paciente.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ErrInvalidInput indica que un SymptomInput no cumple rangos o enums.
var ErrInvalidInput = errors.New("invalid symptom input")

// SymptomInput es la entrada de un pedido de triaje.
// Los campos numericos opcionales son punteros: nil significa "no informado".
type SymptomInput struct {
	Age          *int     `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
	Sex          *Sex     `json:"sex,omitempty" validate:"omitempty,oneof=male female other"`
	Symptoms     []string `json:"symptoms"`
	DurationDays *int     `json:"duration_days,omitempty" validate:"omitempty,min=0"`
	Severity     *int     `json:"severity_1to10,omitempty" validate:"omitempty,min=1,max=10"`
	Notes        string   `json:"notes,omitempty"`
}

// FieldViolation describe un campo invalido.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError agrupa las violaciones detectadas al construir un SymptomInput.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportamos el nombre JSON del campo, que es lo que ve el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate verifica rangos y enums. Devuelve *ValidationError si algo falla.
func (in SymptomInput) Validate() error {
	err := inputValidator.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out := &ValidationError{Violations: make([]FieldViolation, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:  fe.Field(),
			Reason: violationReason(fe),
		})
	}
	return out
}

// NewSymptomInput construye y valida la entrada en un solo paso.
func NewSymptomInput(in SymptomInput) (SymptomInput, error) {
	if err := in.Validate(); err != nil {
		return SymptomInput{}, err
	}
	return in, nil
}

func violationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
