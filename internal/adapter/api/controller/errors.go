package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// respondError traduz o erro para o status HTTP e a mensagem ao cliente.
// Erros internos são registrados e não expõem detalhes.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	status := apperror.HTTPStatus(err)
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		log.Error(message, "error", err, "kind", string(apperror.KindOf(err)), "path", ctx.FullPath())
		ctx.JSON(status, dto.NewErrorResponse(status, message, apperror.MessageOf(err)))
		return
	}

	ctx.JSON(status, dto.NewErrorResponse(status, apperror.MessageOf(err), ""))
}

func badRequest(ctx *gin.Context, message string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
}
