package main

import "github.com/Alexkhokhlow/core-go-101/internal/lexer"

type SituatedErr interface {
	Unwrap() error
	At() lexer.Location
}
