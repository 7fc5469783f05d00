package dto

import (
	errs "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs), com uma
// extensão para erros de validação por campo
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// ExtractValidationErrors converte erros do validator em erros de campo.
// Para erros que não são do validator (ex: JSON malformado), retorna nil.
func ExtractValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return result
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Detail = T(c, detailKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: *problem}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação (400)
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 com detalhe próprio
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}

// UnavailableErrorResponseI18n cria uma resposta de erro 503 (store fora do ar)
func UnavailableErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/store-unavailable",
		"error.unavailable.title",
		"error.unavailable.detail",
		503,
	)
}
