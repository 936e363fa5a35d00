package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_SetSearchParam(t *testing.T) {
	params, err := Parse("?zoom=3&country=Old")
	require.NoError(t, err)

	params.SetSearchParam("country", "Testland")
	params.SetSearchParam("iso2", "TL")

	assert.Equal(t, "Testland", params.Get("country"))
	assert.Equal(t, "country=Testland&iso2=TL&zoom=3", params.Encode())
}

func TestParams_Escaping(t *testing.T) {
	params := New()

	params.SetSearchParam("country", "Bosnia and Herz.")

	assert.Equal(t, "country=Bosnia+and+Herz.", params.Encode())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("a=%zz")

	assert.Error(t, err)
}
