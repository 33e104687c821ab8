package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.Status())
	assert.Equal(t, http.StatusBadRequest, KindConflict.Status())
	assert.Equal(t, http.StatusUnauthorized, KindAuth.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusInternalServerError, KindStore.Status())
}

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := fmt.Errorf("verify: %w", Wrap(ErrInvalidToken, cause))

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMissingToken)
	assert.Equal(t, KindAuth, KindOf(err))
	assert.Equal(t, "invalid token", Message(err))
}

func TestStoreErrorsAreOpaque(t *testing.T) {
	err := Store(errors.New("disk I/O error at /var/lib/portfolio.db"))

	assert.Equal(t, KindStore, KindOf(err))
	assert.Equal(t, "internal server error", Message(err))
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestUnknownErrorsAreStoreErrors(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, KindStore, KindOf(err))
	assert.Equal(t, "internal server error", Message(err))
}
