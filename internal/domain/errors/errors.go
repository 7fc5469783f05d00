package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrPostNotFound       = errors.New("error.post_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrAuthorNotFound     = errors.New("error.author_not_found")
	ErrStoreUnavailable   = errors.New("error.store_unavailable")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation  = "/problems/validation-error"
	ProblemTypeNotFound    = "/problems/not-found"
	ProblemTypeConflict    = "/problems/conflict"
	ProblemTypeInternal    = "/problems/internal-error"
	ProblemTypeBadRequest  = "/problems/bad-request"
	ProblemTypeUnavailable = "/problems/store-unavailable"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
