package services

import (
	"errors"
	"net/http"
)

type AnalysisCode string

const (
	CodeMissingInput            AnalysisCode = "missing_input"
	CodePayloadTooLarge         AnalysisCode = "payload_too_large"
	CodeMisconfiguredCredential AnalysisCode = "misconfigured_credential"
	CodeUpstreamAuth            AnalysisCode = "upstream_auth_error"
	CodeUpstreamRateLimited     AnalysisCode = "upstream_rate_limited"
	CodeUpstreamPayloadTooLarge AnalysisCode = "upstream_payload_too_large"
	CodeUpstreamError           AnalysisCode = "upstream_error"
	CodeUnparsableResponse      AnalysisCode = "unparsable_response"
	CodeMalformedJSON           AnalysisCode = "malformed_json"
	CodeIncompleteResult        AnalysisCode = "incomplete_result"
)

// AnalysisError classifies a failed analysis. Message is safe to show to end
// users; Detail (status codes, truncated raw replies) stays in server logs.
type AnalysisError struct {
	Code    AnalysisCode
	Message string
	Detail  string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return string(e.Code) + ": " + e.Detail
	}
	return string(e.Code)
}

func (e *AnalysisError) HTTPStatus() int {
	switch e.Code {
	case CodeMissingInput:
		return http.StatusBadRequest
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeMisconfiguredCredential, CodeUpstreamRateLimited:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func newAnalysisError(code AnalysisCode, detail string) *AnalysisError {
	return &AnalysisError{Code: code, Message: userMessages[code], Detail: detail}
}

var userMessages = map[AnalysisCode]string{
	CodeMissingInput:            "Imagem é obrigatória.",
	CodePayloadTooLarge:         "Imagem muito grande. Máximo 4MB.",
	CodeMisconfiguredCredential: "Serviço de análise indisponível. Entre em contato com o administrador.",
	CodeUpstreamAuth:            "Credenciais do serviço de análise inválidas. Entre em contato com o administrador.",
	CodeUpstreamRateLimited:     "Serviço temporariamente sobrecarregado. Tente novamente em alguns minutos.",
	CodeUpstreamPayloadTooLarge: "Imagem muito grande para o serviço de análise.",
	CodeUpstreamError:           "Erro no serviço de análise. Tente novamente.",
	CodeUnparsableResponse:      "Não foi possível analisar a imagem. Tente novamente.",
	CodeMalformedJSON:           "Não foi possível analisar a imagem. Tente novamente.",
	CodeIncompleteResult:        "Não foi possível analisar a imagem. Tente novamente.",
}

// AsAnalysisError unwraps err into an *AnalysisError, classifying anything
// unrecognized as a plain upstream failure.
func AsAnalysisError(err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}
	return newAnalysisError(CodeUpstreamError, err.Error())
}
