package domain

import (
	"errors"
	"fmt"
)

// Erros da fonte de vendas
var (
	ErrNetwork       = errors.New("sales source unreachable")
	ErrParse         = errors.New("sales payload is not well-formed")
	ErrInvalidRecord = errors.New("invalid sale record")
)

// Códigos usados em SourceError
const (
	CodeNetwork       = "SRC_001"
	CodeParse         = "SRC_002"
	CodeInvalidRecord = "VAL_004"
)

// SourceError é um erro da fonte de vendas com contexto adicional
type SourceError struct {
	Err     error  // Erro base (ErrNetwork ou ErrParse)
	Code    string // Código de erro para API
	Details string
}

func (e *SourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewNetworkError cria um SourceError de rede
func NewNetworkError(details string) *SourceError {
	return &SourceError{Err: ErrNetwork, Code: CodeNetwork, Details: details}
}

// NewParseError cria um SourceError de payload malformado
func NewParseError(details string) *SourceError {
	return &SourceError{Err: ErrParse, Code: CodeParse, Details: details}
}

// RecordError indica qual registro e qual campo falharam na validação
type RecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d: field %q %s", ErrInvalidRecord.Error(), e.Index, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrInvalidRecord
}

// ErrorCode devolve o código de API associado a um erro da fonte de vendas
func ErrorCode(err error) string {
	var srcErr *SourceError
	switch {
	case errors.As(err, &srcErr):
		return srcErr.Code
	case errors.Is(err, ErrInvalidRecord):
		return CodeInvalidRecord
	case errors.Is(err, ErrParse):
		return CodeParse
	case errors.Is(err, ErrNetwork):
		return CodeNetwork
	}
	return ""
}
