package jsonutil_test

import (
	"encoding/json"
	"testing"

	"github.com/Alexkhokhlow/core-go-101/geometry"
	"github.com/Alexkhokhlow/core-go-101/jsonutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	got, err := jsonutil.ToJSON(geometry.NewRectangle(10, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":10,"height":20}`, got)
}

func TestToJSONError(t *testing.T) {
	_, err := jsonutil.ToJSON(make(chan int))

	var ute *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &ute)
}

func TestFromJSON(t *testing.T) {
	c, err := jsonutil.FromJSON[geometry.Circle](`{"radius":10}`)
	require.NoError(t, err)

	assert.EqualValues(t, 10, c.Radius)
	assert.InDelta(t, 314.159265, c.Area(), 1e-6)
}

func TestFromJSONRoundTrip(t *testing.T) {
	text, err := jsonutil.ToJSON(geometry.NewRectangle(3, 4))
	require.NoError(t, err)

	r, err := jsonutil.FromJSON[geometry.Rectangle](text)
	require.NoError(t, err)
	assert.EqualValues(t, 12, r.Area())
}

func TestFromJSONMalformed(t *testing.T) {
	// Parse failures surface the json package's own error, unwrapped.
	_, err := jsonutil.FromJSON[geometry.Circle](`{"radius":`)

	var syn *json.SyntaxError
	assert.ErrorAs(t, err, &syn)
}
