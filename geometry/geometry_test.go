package geometry_test

import (
	"math"
	"testing"

	"github.com/Alexkhokhlow/core-go-101/geometry"
	"github.com/stretchr/testify/assert"
)

func TestRectangleArea(t *testing.T) {
	assert.EqualValues(t, 200, geometry.NewRectangle(10, 20).Area())
	assert.EqualValues(t, 12, geometry.NewRectangle(3, 4).Area())
}

func TestCircleArea(t *testing.T) {
	assert.InDelta(t, math.Pi*100, geometry.Circle{Radius: 10}.Area(), 1e-9)
}
