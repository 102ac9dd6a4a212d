package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Los valores monetarios viajan como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationError error de validación de frontera con mensaje fijo por clase
// de violación. Un solo campo inválido rechaza la petición completa.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError construye un error de validación con el mensaje dado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// AsValidation devuelve el *ValidationError envuelto en err, o nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// present indica si el campo venía en el body (y no era null JSON).
func present(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return len(trimmed) > 0 && trimmed != "null"
}

// asString devuelve el valor si el campo es un string JSON.
func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// asNumber devuelve el valor si el campo es un número JSON.
func asNumber(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// asInt devuelve el valor si el campo es un número JSON sin parte fraccional
// (los identificadores y años son enteros).
func asInt(raw json.RawMessage) (int64, bool) {
	f, ok := asNumber(raw)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// asDecimal devuelve el valor si el campo es un número JSON, preservando la
// precisión decimal del texto original.
func asDecimal(raw json.RawMessage) (decimal.Decimal, bool) {
	if _, ok := asNumber(raw); !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(raw)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
