package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("não encontrada")))
	assert.Equal(t, KindAlreadyExists, KindOf(AlreadyExists("já existe")))
	assert.Equal(t, KindInvalidInput, KindOf(InvalidInput("inválido")))
	assert.Equal(t, KindDependency, KindOf(Dependency("associados")))
	assert.Equal(t, KindInternal, KindOf(Internal("falhou", errors.New("boom"))))
}

func TestKindOfRawErrorDefaultsToInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("não encontrada"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindAlreadyExists))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "não encontrada", NotFound("não encontrada").Error())

	cause := errors.New("boom")
	withCause := Internal("", cause)
	assert.Equal(t, "boom", withCause.Error())
	assert.ErrorIs(t, withCause, cause)

	bare := &Error{Kind: KindInternal}
	assert.Equal(t, string(KindInternal), bare.Error())
}
