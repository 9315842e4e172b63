package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/pkg/apperrors"
)

// kindStatus maps service failure kinds to HTTP status codes. A
// dependency rejection is a client error: the request is valid only
// once the referencing rows are gone.
var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:      http.StatusNotFound,
	apperrors.KindAlreadyExists: http.StatusConflict,
	apperrors.KindInvalidInput:  http.StatusBadRequest,
	apperrors.KindDependency:    http.StatusBadRequest,
	apperrors.KindInternal:      http.StatusInternalServerError,
}

var kindCode = map[apperrors.Kind]dto.ErrorCode{
	apperrors.KindNotFound:      dto.ErrorCodeNotFound,
	apperrors.KindAlreadyExists: dto.ErrorCodeAlreadyExists,
	apperrors.KindInvalidInput:  dto.ErrorCodeInvalidInput,
	apperrors.KindDependency:    dto.ErrorCodeDependencyError,
	apperrors.KindInternal:      dto.ErrorCodeInternalServer,
}

// HandleAPIError converts a service error into the uniform error
// envelope and writes it with the matching status code.
func HandleAPIError(ctx *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	code, ok := kindCode[kind]
	if !ok {
		code = dto.ErrorCodeInternalServer
	}

	// Raw errors never reach the response body; only the curated
	// service message does.
	message := "Ocorreu um erro interno. Tente novamente mais tarde."
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	ctx.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
