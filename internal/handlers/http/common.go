package http

import (
	"context"
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blogfeed-backend/internal/domain/errors"
	"github.com/rafabene/blogfeed-backend/internal/handlers/dto"
)

// parseIDParam extrai e valida o parâmetro :id da rota.
// IDs não numéricos são rejeitados aqui com 400, antes de qualquer
// chamada à camada de persistência.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response := dto.BadRequestErrorResponseI18n(c, "error.invalid_id", map[string]interface{}{"Value": raw})
		c.JSON(http.StatusBadRequest, response)
		return 0, false
	}

	return uint(id), true
}

// respondError traduz um erro da camada de serviço em uma resposta HTTP.
// Todo erro vira uma resposta específica: nada vaza para um handler
// global de panics.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
	case errs.Is(err, errors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Post"))
	case errs.Is(err, errors.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Author"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
	case errs.Is(err, errors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_email"))
	case errs.Is(err, errors.ErrStoreUnavailable), errs.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, dto.UnavailableErrorResponseI18n(c))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError trata falha de binding/validação do corpo JSON
func respondBindingError(c *gin.Context, err error) {
	response := dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err))
	c.JSON(http.StatusBadRequest, response)
}
