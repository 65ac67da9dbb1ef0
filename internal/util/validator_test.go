package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

func TestValidatorSubtypes(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Var("sequential", "accuracysubtype"))
	assert.Error(t, v.Var("secuencial", "accuracysubtype"))
	assert.NoError(t, v.Var("hurdle_jump", "plyometricsubtype"))
	assert.Error(t, v.Var("box", "plyometricsubtype"))
}

func TestValidatorNullTypes(t *testing.T) {
	v := NewValidator()

	type body struct {
		Count null.Int   `validate:"gte=0"`
		Ratio null.Float `validate:"gte=0"`
	}
	assert.NoError(t, v.Struct(body{}))
	assert.NoError(t, v.Struct(body{Count: null.IntFrom(3), Ratio: null.FloatFrom(0.5)}))
	assert.Error(t, v.Struct(body{Count: null.IntFrom(-1)}))
	assert.Error(t, v.Struct(body{Ratio: null.FloatFrom(-0.1)}))
}
