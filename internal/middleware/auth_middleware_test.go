package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/pkg/apperrors"
)

func newAuthTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", APIKeyAuth(apiKey), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyAuthValidKey(t *testing.T) {
	router := newAuthTestRouter("secret-key")

	rec := doRequest(router, "ApiKey secret-key")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuthSchemeCaseInsensitive(t *testing.T) {
	router := newAuthTestRouter("secret-key")

	rec := doRequest(router, "apikey secret-key")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuthMissingHeader(t *testing.T) {
	router := newAuthTestRouter("secret-key")

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestAPIKeyAuthWrongScheme(t *testing.T) {
	router := newAuthTestRouter("secret-key")

	rec := doRequest(router, "Bearer secret-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuthWrongKey(t *testing.T) {
	router := newAuthTestRouter("secret-key")

	rec := doRequest(router, "ApiKey not-the-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuthUnconfiguredKeyRefusesAll(t *testing.T) {
	router := newAuthTestRouter("")

	rec := doRequest(router, "ApiKey anything")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.NotFound("Escola com ID 1 não encontrada."), http.StatusNotFound, dto.ErrorCodeNotFound},
		{"already exists", apperrors.AlreadyExists("Escola com o nome 'X' já existe."), http.StatusConflict, dto.ErrorCodeAlreadyExists},
		{"invalid input", apperrors.InvalidInput("Formato de data inválido para event_date. Use AAAA-MM-DD."), http.StatusBadRequest, dto.ErrorCodeInvalidInput},
		{"dependency", apperrors.Dependency("Não é possível deletar a escola. Alunos estão associados a ela."), http.StatusBadRequest, dto.ErrorCodeDependencyError},
		{"internal", apperrors.Internal("Não foi possível criar a escola.", errors.New("boom")), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
		{"raw error", errors.New("pgx: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)

			HandleAPIError(ctx, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesRawErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	HandleAPIError(ctx, errors.New("pq: syntax error at or near SELECT"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "SELECT")
}
