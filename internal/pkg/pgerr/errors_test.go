package pgerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message)
	assert.Equal(t, "changed", changedE.Message)

	withExtras := e.WithExtras(Extras{"field": "accountId"})
	assert.Nil(t, e.Extras)
	assert.NotNil(t, withExtras.Extras)
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrap(ErrNotFound.Msg("account %d not found", 3), "report")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidReq)
}

func TestNotFoundStatus(t *testing.T) {
	assert.Equal(t, 404, ErrNotFound.StatusCode)
	assert.Equal(t, 400, ErrInvalidDateFormat.StatusCode)
}
