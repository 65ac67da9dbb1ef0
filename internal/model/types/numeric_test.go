package types_test

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/trialstats/internal/model/types"
)

func TestPercentRendersTwoDecimals(t *testing.T) {
	cases := []struct {
		in   types.Percent
		want string
	}{
		{92, `"92.00"`},
		{0, `"0.00"`},
		{100, `"100.00"`},
		{66.6666666667, `"66.67"`},
		{types.Percent(math.NaN()), `"0.00"`},
	}
	for _, c := range cases {
		b, err := json.Marshal(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, string(b))
	}
}

func TestMagnitudeRoundsToThreeDecimals(t *testing.T) {
	b, err := json.Marshal(struct {
		Reach types.Magnitude `json:"reach"`
	}{Reach: 2.71828})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reach":2.718}`, string(b))

	assert.Equal(t, 3.0, types.Magnitude(3).Rounded())
	assert.Equal(t, 0.0, types.Magnitude(math.Inf(1)).Rounded())
}
