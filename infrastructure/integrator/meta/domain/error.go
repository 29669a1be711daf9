package metadomain

import (
	"errors"
	"fmt"
)

// Subcódigo retornado pelo Meta quando o ad set pede destino WhatsApp mas o
// número informado não está habilitado para a página
const WhatsAppDestinationErrorSubcode = 2446404

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	UserTitle    string      `json:"error_user_title,omitempty"`
	UserMessage  string      `json:"error_user_msg,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// APIError é um erro estruturado retornado pelos endpoints de escrita,
// preservando código e subcódigo para as políticas de retry
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro na API do Meta (status: %d, código: %d, subcódigo: %d): %s",
		e.StatusCode, e.Details.Code, e.Details.ErrorSubcode, e.Details.Message)
}

// IsWhatsAppDestinationError verifica se o erro é a recusa específica de
// destino WhatsApp na criação de ad set
func IsWhatsAppDestinationError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Details.ErrorSubcode == WhatsAppDestinationErrorSubcode
}
