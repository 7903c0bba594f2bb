// Package geometry holds the plain shape records used by the JSON exercises.
package geometry

import "math"

type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRectangle(width, height float64) Rectangle {
	return Rectangle{
		Width:  width,
		Height: height,
	}
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

type Circle struct {
	Radius float64 `json:"radius"`
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
