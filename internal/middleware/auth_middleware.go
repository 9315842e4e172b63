package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/pkg/logger"
)

// apiKeyScheme is the expected Authorization scheme.
const apiKeyScheme = "ApiKey"

// APIKeyAuth guards a route group with a static API key carried as
// "Authorization: ApiKey <key>". The comparison is constant time.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if apiKey == "" {
			// Refuse everything rather than run open when the key was
			// never configured.
			logger.Error().Msg("API key is not configured; rejecting request")
			abortWithError(ctx, http.StatusInternalServerError, dto.ErrorCodeInternalServer,
				"Autenticação indisponível.")
			return
		}

		header := ctx.GetHeader("Authorization")
		if header == "" {
			abortWithError(ctx, http.StatusUnauthorized, dto.ErrorCodeUnauthorized,
				"Cabeçalho de autorização ausente.")
			return
		}

		scheme, key, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, apiKeyScheme) {
			abortWithError(ctx, http.StatusUnauthorized, dto.ErrorCodeUnauthorized,
				"Formato de autorização inválido. Use 'ApiKey <chave>'.")
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(ctx, http.StatusUnauthorized, dto.ErrorCodeUnauthorized,
				"Chave de API inválida.")
			return
		}

		ctx.Next()
	}
}

func abortWithError(ctx *gin.Context, status int, code dto.ErrorCode, message string) {
	ctx.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
