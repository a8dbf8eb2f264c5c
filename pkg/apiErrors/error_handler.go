package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidRecord       = "VAL_004" // Registro de venda inválido
	ErrNotFound            = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado na rota

	// Erros da fonte de vendas (3000-3999)
	ErrSourceNetwork = "SRC_001" // Falha de rede ao buscar vendas
	ErrSourceParse   = "SRC_002" // Resposta da fonte não é JSON válido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidRecord:       http.StatusUnprocessableEntity,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSourceNetwork:       http.StatusBadGateway,
	ErrSourceParse:         http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código; desconhecidos viram 500
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta de erro")
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// FromDomainError traduz os erros de domínio de vendas para o código de API
// correspondente. Erros sem tradução viram SRV_001.
func FromDomainError(err error) APIError {
	switch {
	case err == nil:
		return FromError(nil, ErrInternalServer)
	case errors.Is(err, domain.ErrInvalidRecord):
		apiErr := FromError(err, ErrInvalidRecord)
		var recordErr *domain.RecordError
		if errors.As(err, &recordErr) {
			apiErr.Details = map[string]any{"index": recordErr.Index, "field": recordErr.Field}
		}
		return apiErr
	case errors.Is(err, domain.ErrParse):
		return FromError(err, ErrSourceParse)
	case errors.Is(err, domain.ErrNetwork):
		return FromError(err, ErrSourceNetwork)
	}
	return FromError(err, ErrInternalServer)
}

// Write escreve um APIError já montado
func (e APIError) Write(w http.ResponseWriter) {
	WriteError(w, e.Code, e.Message, e.Details)
}
